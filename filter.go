// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"github.com/molecula/featuretable/errors"
)

// Filter bounds the rows or columns retained by FilterSamples and
// FilterFeatures. The zero value retains everything.
//
// MinFrequency and MaxFrequency bound the total frequency along the
// filtered axis; MinCount and MaxCount bound the number of non-zero
// entries along the orthogonal axis (features observed in a sample, or
// samples a feature is observed in). An upper bound of zero means
// unbounded.
//
// IDs, when non-nil, is a candidate id set resolved by an external
// metadata collaborator (see IDSelector). With ExcludeIDs false only ids
// in the set pass; with ExcludeIDs true only ids not in the set pass.
// Numeric bounds and set membership both have to hold.
type Filter struct {
	MinFrequency float64
	MaxFrequency float64
	MinCount     int
	MaxCount     int
	IDs          map[string]struct{}
	ExcludeIDs   bool
}

func (f Filter) validate() error {
	if f.MaxFrequency > 0 && f.MinFrequency > f.MaxFrequency {
		return errors.Newf(ErrInvalidRange, "minimum frequency %v exceeds maximum frequency %v", f.MinFrequency, f.MaxFrequency)
	}
	if f.MaxCount > 0 && f.MinCount > f.MaxCount {
		return errors.Newf(ErrInvalidRange, "minimum count %d exceeds maximum count %d", f.MinCount, f.MaxCount)
	}
	return nil
}

// keep applies the shared selection rule to one row or column.
func (f Filter) keep(id string, total float64, count int) bool {
	if total < f.MinFrequency || (f.MaxFrequency > 0 && total > f.MaxFrequency) {
		return false
	}
	if count < f.MinCount || (f.MaxCount > 0 && count > f.MaxCount) {
		return false
	}
	if f.IDs != nil {
		_, in := f.IDs[id]
		if in == f.ExcludeIDs {
			return false
		}
	}
	return true
}

// FilterReport counts what a filtering operation removed, including the
// cascade removals on the orthogonal axis.
type FilterReport struct {
	SamplesRemoved  int
	FeaturesRemoved int
}

// FilterSamples retains the sample rows passing the filter, then drops
// any feature column left with no non-zero entries. It returns
// ErrEmptyResult rather than a table with no rows or columns, and
// ErrInvalidRange for inverted bounds.
func FilterSamples(m *Matrix, f Filter) (*Matrix, FilterReport, error) {
	if err := f.validate(); err != nil {
		return nil, FilterReport{}, err
	}

	sampleIDs := make([]string, 0, len(m.sampleIDs))
	rows := make([]map[int]float64, 0, len(m.rows))
	for i, row := range m.rows {
		id := m.sampleIDs[i]
		if !f.keep(id, m.rowSum(i), len(row)) {
			continue
		}
		sampleIDs = append(sampleIDs, id)
		rows = append(rows, cloneRow(row))
	}
	if len(sampleIDs) == 0 {
		return nil, FilterReport{}, errors.New(ErrEmptyResult, "all samples were filtered out of the table")
	}

	out := newMatrix(sampleIDs, m.FeatureIDs(), rows).pruned()
	report := FilterReport{
		SamplesRemoved:  m.NumSamples() - out.NumSamples(),
		FeaturesRemoved: m.NumFeatures() - out.NumFeatures(),
	}
	return out, report, nil
}

// FilterFeatures retains the feature columns passing the filter, then
// drops any sample row left with no non-zero entries. Errors as in
// FilterSamples.
func FilterFeatures(m *Matrix, f Filter) (*Matrix, FilterReport, error) {
	if err := f.validate(); err != nil {
		return nil, FilterReport{}, err
	}

	totals := m.featureTotals()
	counts := m.featureCounts()
	colKeep := make([]bool, len(m.featureIDs))
	kept := 0
	for j, id := range m.featureIDs {
		if f.keep(id, totals[j], counts[j]) {
			colKeep[j] = true
			kept++
		}
	}
	if kept == 0 {
		return nil, FilterReport{}, errors.New(ErrEmptyResult, "all features were filtered out of the table")
	}

	colMap := make([]int, len(m.featureIDs))
	featureIDs := make([]string, 0, kept)
	for j, keep := range colKeep {
		if keep {
			colMap[j] = len(featureIDs)
			featureIDs = append(featureIDs, m.featureIDs[j])
		} else {
			colMap[j] = -1
		}
	}

	rows := make([]map[int]float64, len(m.rows))
	for i, row := range m.rows {
		nr := make(map[int]float64)
		for j, v := range row {
			if colKeep[j] {
				nr[colMap[j]] = v
			}
		}
		rows[i] = nr
	}

	out := newMatrix(m.SampleIDs(), featureIDs, rows).pruned()
	if out.NumSamples() == 0 {
		return nil, FilterReport{}, errors.New(ErrEmptyResult, "feature filtering left no samples in the table")
	}
	report := FilterReport{
		SamplesRemoved:  m.NumSamples() - out.NumSamples(),
		FeaturesRemoved: m.NumFeatures() - out.NumFeatures(),
	}
	return out, report, nil
}
