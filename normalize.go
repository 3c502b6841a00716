// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"github.com/molecula/featuretable/errors"
)

// RelativeFrequency converts frequencies to relative frequencies by
// dividing each entry by its sample row total. Output rows sum to 1.0 up
// to floating-point tolerance and non-zero entries keep their positions.
// The structural invariant rules out all-zero rows, but a zero row sum is
// still checked and reported as ErrEmptyValue.
func RelativeFrequency(m *Matrix) (*Matrix, error) {
	rows := make([]map[int]float64, len(m.rows))
	for i, row := range m.rows {
		sum := m.rowSum(i)
		if sum == 0 {
			return nil, errors.New(ErrEmptyValue, "sample "+m.sampleIDs[i]+" has a total frequency of zero")
		}
		nr := make(map[int]float64, len(row))
		for j, v := range row {
			nr[j] = v / sum
		}
		rows[i] = nr
	}
	return newMatrix(m.SampleIDs(), m.FeatureIDs(), rows), nil
}

// PresenceAbsence converts every non-zero frequency to 1, leaving row and
// column membership unchanged.
func PresenceAbsence(m *Matrix) *Matrix {
	rows := make([]map[int]float64, len(m.rows))
	for i, row := range m.rows {
		nr := make(map[int]float64, len(row))
		for j := range row {
			nr[j] = 1
		}
		rows[i] = nr
	}
	return newMatrix(m.SampleIDs(), m.FeatureIDs(), rows)
}
