// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"sort"
)

// IDFrequency pairs an id with its total frequency along one axis.
type IDFrequency struct {
	ID        string
	Frequency float64
}

// AxisSummary describes the distribution of total frequencies along one
// axis of a table. Frequencies is sorted by descending frequency, ties
// broken by id.
type AxisSummary struct {
	Min         float64
	Max         float64
	Mean        float64
	Median      float64
	Frequencies []IDFrequency
}

// Summary holds tabular summary statistics for a table. It is the data
// an external report generator renders; no rendering happens here.
type Summary struct {
	SampleCount    int
	FeatureCount   int
	TotalFrequency float64
	Samples        AxisSummary
	Features       AxisSummary
}

// Summarize computes summary statistics for the table.
func Summarize(m *Matrix) *Summary {
	sampleFreqs := make([]IDFrequency, len(m.sampleIDs))
	for i, id := range m.sampleIDs {
		sampleFreqs[i] = IDFrequency{ID: id, Frequency: m.rowSum(i)}
	}
	totals := m.featureTotals()
	featureFreqs := make([]IDFrequency, len(m.featureIDs))
	for j, id := range m.featureIDs {
		featureFreqs[j] = IDFrequency{ID: id, Frequency: totals[j]}
	}

	return &Summary{
		SampleCount:    m.NumSamples(),
		FeatureCount:   m.NumFeatures(),
		TotalFrequency: m.Sum(),
		Samples:        summarizeAxis(sampleFreqs),
		Features:       summarizeAxis(featureFreqs),
	}
}

func summarizeAxis(freqs []IDFrequency) AxisSummary {
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Frequency != freqs[j].Frequency {
			return freqs[i].Frequency > freqs[j].Frequency
		}
		return freqs[i].ID < freqs[j].ID
	})

	s := AxisSummary{Frequencies: freqs}
	if len(freqs) == 0 {
		return s
	}
	s.Max = freqs[0].Frequency
	s.Min = freqs[len(freqs)-1].Frequency
	var sum float64
	for _, f := range freqs {
		sum += f.Frequency
	}
	s.Mean = sum / float64(len(freqs))
	// freqs is descending, so the median reads straight out of it.
	mid := len(freqs) / 2
	if len(freqs)%2 == 1 {
		s.Median = freqs[mid].Frequency
	} else {
		s.Median = (freqs[mid-1].Frequency + freqs[mid].Frequency) / 2
	}
	return s
}
