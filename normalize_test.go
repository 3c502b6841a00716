// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	featuretable "github.com/molecula/featuretable"
)

func TestRelativeFrequency(t *testing.T) {
	m := testTable(t)
	rel, err := featuretable.RelativeFrequency(m)
	require.NoError(t, err)

	assert.InDelta(t, 0.667, rel.Value("S1", "f1"), 1e-3)
	assert.InDelta(t, 0.333, rel.Value("S1", "f3"), 1e-3)
	assert.InDelta(t, 0.6, rel.Value("S2", "f2"), 1e-6)
	assert.InDelta(t, 0.4, rel.Value("S2", "f3"), 1e-6)

	for _, id := range rel.SampleIDs() {
		assert.InDelta(t, 1.0, rel.SampleSum(id), 1e-9, "row %s should sum to 1", id)
	}

	// non-zero positions unchanged
	assert.Equal(t, m.SampleIDs(), rel.SampleIDs())
	assert.Equal(t, m.FeatureIDs(), rel.FeatureIDs())
	for _, s := range m.SampleIDs() {
		for _, f := range m.FeatureIDs() {
			assert.Equal(t, m.Value(s, f) != 0, rel.Value(s, f) != 0)
		}
	}

	// input untouched
	assert.Equal(t, 10.0, m.Value("S1", "f1"))
}

func TestPresenceAbsence(t *testing.T) {
	m := testTable(t)
	pa := featuretable.PresenceAbsence(m)

	assert.Equal(t, [][]float64{
		{1, 0, 1},
		{0, 1, 1},
	}, pa.Dense())

	t.Run("Idempotent", func(t *testing.T) {
		again := featuretable.PresenceAbsence(pa)
		assert.Equal(t, pa.Dense(), again.Dense())
		assert.Equal(t, pa.SampleIDs(), again.SampleIDs())
		assert.Equal(t, pa.FeatureIDs(), again.FeatureIDs())
	})
}
