// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

// SideData associates feature ids with an opaque value, such as a
// sequence or a taxonomic annotation. Keys are unique by construction of
// the map type; values are never interpreted by this package.
type SideData map[string]string

// MergeSideData returns the key-wise union of two side data collections.
// When a feature id exists in both, data1's value wins and data2's value
// for that id is discarded. This is a pure precedence merge; values are
// never combined.
func MergeSideData(data1, data2 SideData) SideData {
	out := make(SideData, len(data1)+len(data2))
	for id, v := range data2 {
		out[id] = v
	}
	for id, v := range data1 {
		out[id] = v
	}
	return out
}
