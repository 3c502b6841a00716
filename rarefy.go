// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"sort"

	"github.com/molecula/featuretable/errors"
)

// Source is the randomness a Rarefy call consumes. It is satisfied by
// *math/rand.Rand, and must be owned by the caller so separate calls can
// use independently seeded generators and reproduce their results.
type Source interface {
	Int63n(n int64) int64
}

// Rarefy subsamples each sample row without replacement so that retained
// rows sum to exactly depth. Samples whose total frequency is below depth
// are dropped, and features left with no non-zero entries are dropped
// afterward. Non-integral frequencies are truncated toward zero before
// anything else: the truncated counts form the multiset being drawn
// from, decide whether a sample meets the depth, and are what a row
// retained without subsampling holds.
//
// The per-feature counts after subsampling follow the multivariate
// hypergeometric distribution over the original counts: the row is
// scanned once and each remaining item is kept with conditional
// probability need/remaining, which is an exact without-replacement
// draw rather than an approximation.
//
// Rarefy returns ErrInvalidDepth when depth is not positive and
// ErrEmptyResult when no sample meets the depth.
func Rarefy(m *Matrix, depth int64, src Source) (*Matrix, error) {
	if depth <= 0 {
		return nil, errors.Newf(ErrInvalidDepth, "sampling depth must be positive, got %d", depth)
	}

	sampleIDs := make([]string, 0, len(m.sampleIDs))
	rows := make([]map[int]float64, 0, len(m.rows))
	for i, row := range m.rows {
		cols := sortedCols(row)
		counts := make([]int64, len(cols))
		var total int64
		for k, j := range cols {
			counts[k] = int64(row[j])
			total += counts[k]
		}
		if total < depth {
			continue
		}

		drawn := counts
		if total > depth {
			drawn = subsample(counts, total, depth, src)
		}
		nr := make(map[int]float64)
		for k, j := range cols {
			if drawn[k] > 0 {
				nr[j] = float64(drawn[k])
			}
		}
		sampleIDs = append(sampleIDs, m.sampleIDs[i])
		rows = append(rows, nr)
	}
	if len(sampleIDs) == 0 {
		return nil, errors.Newf(ErrEmptyResult, "no sample has a total frequency of at least %d", depth)
	}
	return newMatrix(sampleIDs, m.FeatureIDs(), rows).pruned(), nil
}

// subsample draws depth items without replacement from the multiset
// described by counts, whose entries sum to total. Each remaining item is
// kept with probability need/remaining, so the vector of kept counts is
// multivariate hypergeometric. Integer arithmetic only; one pass over the
// multiset.
func subsample(counts []int64, total, depth int64, src Source) []int64 {
	out := make([]int64, len(counts))
	remaining, need := total, depth
	for k, c := range counts {
		if need == 0 {
			break
		}
		if remaining == need {
			// Everything left must be kept.
			out[k] = c
			need -= c
			remaining -= c
			continue
		}
		for j := int64(0); j < c; j++ {
			if need > 0 && src.Int63n(remaining) < need {
				out[k]++
				need--
			}
			remaining--
		}
	}
	return out
}

// sortedCols returns the row's feature indices in ascending order, so
// randomness is consumed in a deterministic order for a fixed source.
func sortedCols(row map[int]float64) []int {
	cols := make([]int, 0, len(row))
	for j := range row {
		cols = append(cols, j)
	}
	sort.Ints(cols)
	return cols
}
