// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"github.com/molecula/featuretable/errors"
)

// OverlapMethod selects the policy for sample ids appearing in both
// inputs of a Merge. The feature axis is always unioned, with values for
// a colliding (sample, feature) pair combined by summation.
type OverlapMethod string

const (
	// OverlapError fails the merge when any sample id occurs in both
	// tables.
	OverlapError OverlapMethod = "error_on_overlapping_sample"

	// OverlapUnion merges a sample present in both tables by summing its
	// feature vectors.
	OverlapUnion OverlapMethod = "union"

	// OverlapFirst keeps the first table's row for a sample present in
	// both tables and ignores the second table's row for that id
	// entirely; rows unique to either side are kept.
	OverlapFirst OverlapMethod = "first"
)

func (om OverlapMethod) valid() bool {
	switch om {
	case OverlapError, OverlapUnion, OverlapFirst:
		return true
	}
	return false
}

// MergeReport counts the id collisions a merge encountered.
type MergeReport struct {
	OverlappingSamples  int
	OverlappingFeatures int
}

// Merge combines two tables into one. The sample axis is the union of
// both inputs' ids resolved by method; the feature axis is always the
// union, with colliding entries summed, never overwritten. Ids from t1
// keep their order and ids only in t2 follow in t2's order.
//
// Merge returns ErrInvalidOverlapMethod for an unknown method and
// ErrOverlapConflict under OverlapError when the sample id sets
// intersect.
func Merge(t1, t2 *Matrix, method OverlapMethod) (*Matrix, MergeReport, error) {
	if !method.valid() {
		return nil, MergeReport{}, errors.Newf(ErrInvalidOverlapMethod, "unknown overlap method %q", string(method))
	}

	var report MergeReport
	for _, id := range t2.sampleIDs {
		if t1.HasSample(id) {
			report.OverlappingSamples++
		}
	}
	for _, id := range t2.featureIDs {
		if t1.HasFeature(id) {
			report.OverlappingFeatures++
		}
	}
	if method == OverlapError && report.OverlappingSamples > 0 {
		return nil, report, errors.Newf(ErrOverlapConflict, "%d sample ids occur in both tables", report.OverlappingSamples)
	}

	featureIDs := unionIDs(t1.featureIDs, t2.featureIDs)
	sampleIDs := unionIDs(t1.sampleIDs, t2.sampleIDs)

	colMap2 := make([]int, len(t2.featureIDs))
	featureIdx := make(map[string]int, len(featureIDs))
	for j, id := range featureIDs {
		featureIdx[id] = j
	}
	for j, id := range t2.featureIDs {
		colMap2[j] = featureIdx[id]
	}

	rows := make([]map[int]float64, len(sampleIDs))
	for i, id := range sampleIDs {
		row := make(map[int]float64)
		i1, in1 := t1.sampleIdx[id]
		if in1 {
			// t1's feature order is a prefix of the merged order.
			for j, v := range t1.rows[i1] {
				row[j] += v
			}
		}
		if i2, in2 := t2.sampleIdx[id]; in2 && !(in1 && method == OverlapFirst) {
			for j, v := range t2.rows[i2] {
				row[colMap2[j]] += v
			}
		}
		rows[i] = row
	}

	return newMatrix(sampleIDs, featureIDs, rows).pruned(), report, nil
}

// unionIDs returns a's ids followed by the ids only in b, in b's order.
func unionIDs(a, b []string) []string {
	out := make([]string, len(a), len(a)+len(b))
	copy(out, a)
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
