// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/molecula/featuretable/errors"
)

// A zero-sum row cannot be built through the public constructors, so the
// zero-sum check in RelativeFrequency is exercised on a hand-assembled
// matrix.
func TestRelativeFrequencyZeroRow(t *testing.T) {
	m := newMatrix(
		[]string{"S1", "S2"},
		[]string{"f1"},
		[]map[int]float64{
			{0: 3},
			{},
		},
	)
	_, err := RelativeFrequency(m)
	assert.True(t, errors.Is(err, ErrEmptyValue))
}
