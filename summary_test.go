// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	featuretable "github.com/molecula/featuretable"
)

func TestSummarize(t *testing.T) {
	m := testTable(t)
	s := featuretable.Summarize(m)

	assert.Equal(t, 2, s.SampleCount)
	assert.Equal(t, 3, s.FeatureCount)
	assert.Equal(t, 20.0, s.TotalFrequency)

	assert.Equal(t, 15.0, s.Samples.Max)
	assert.Equal(t, 5.0, s.Samples.Min)
	assert.Equal(t, 10.0, s.Samples.Mean)
	assert.Equal(t, 10.0, s.Samples.Median)
	assert.Equal(t, []featuretable.IDFrequency{
		{ID: "S1", Frequency: 15},
		{ID: "S2", Frequency: 5},
	}, s.Samples.Frequencies)

	// feature totals: f1 10, f3 7, f2 3
	assert.Equal(t, 10.0, s.Features.Max)
	assert.Equal(t, 3.0, s.Features.Min)
	assert.Equal(t, 7.0, s.Features.Median)
	assert.Equal(t, []featuretable.IDFrequency{
		{ID: "f1", Frequency: 10},
		{ID: "f3", Frequency: 7},
		{ID: "f2", Frequency: 3},
	}, s.Features.Frequencies)
}
