// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"github.com/molecula/featuretable/errors"
)

// Cell is one non-zero entry of a Matrix in coordinate form.
type Cell struct {
	Sample    string
	Feature   string
	Frequency float64
}

// Matrix is a sparse sample×feature frequency table. Rows are samples,
// columns are features; absent entries are zero. The id sequences give
// the canonical row and column order for output. A Matrix is immutable
// once returned; every operation in this package yields a new one.
type Matrix struct {
	sampleIDs  []string
	featureIDs []string
	sampleIdx  map[string]int
	featureIdx map[string]int

	// rows[i] maps feature index to frequency and holds only non-zero
	// entries, so memory stays proportional to occupancy.
	rows []map[int]float64
}

// NewMatrix returns a matrix built from a dense row-major frequency
// table. data must have one row per sample id and one column per feature
// id, all frequencies non-negative. Rows and columns that contain only
// zeros are dropped, so the returned matrix satisfies the structural
// invariant from construction onward.
func NewMatrix(data [][]float64, sampleIDs, featureIDs []string) (*Matrix, error) {
	if len(data) != len(sampleIDs) {
		return nil, errors.Errorf("row count %d does not match sample id count %d", len(data), len(sampleIDs))
	}
	if err := checkIDs(sampleIDs, "sample"); err != nil {
		return nil, err
	}
	if err := checkIDs(featureIDs, "feature"); err != nil {
		return nil, err
	}

	rows := make([]map[int]float64, len(sampleIDs))
	for i, dr := range data {
		if len(dr) != len(featureIDs) {
			return nil, errors.Errorf("row %q has %d columns, want %d", sampleIDs[i], len(dr), len(featureIDs))
		}
		row := make(map[int]float64)
		for j, v := range dr {
			if v < 0 {
				return nil, errors.Errorf("negative frequency %v at (%q, %q)", v, sampleIDs[i], featureIDs[j])
			}
			if v != 0 {
				row[j] = v
			}
		}
		rows[i] = row
	}
	return newMatrix(sampleIDs, featureIDs, rows).pruned(), nil
}

// NewMatrixFromCells returns a matrix built from sparse coordinate form.
// Every cell must reference a known sample and feature id; duplicate
// coordinates accumulate by summation. As with NewMatrix, all-zero rows
// and columns are dropped.
func NewMatrixFromCells(cells []Cell, sampleIDs, featureIDs []string) (*Matrix, error) {
	if err := checkIDs(sampleIDs, "sample"); err != nil {
		return nil, err
	}
	if err := checkIDs(featureIDs, "feature"); err != nil {
		return nil, err
	}

	m := newMatrix(sampleIDs, featureIDs, nil)
	m.rows = make([]map[int]float64, len(sampleIDs))
	for i := range m.rows {
		m.rows[i] = make(map[int]float64)
	}
	for _, c := range cells {
		i, ok := m.sampleIdx[c.Sample]
		if !ok {
			return nil, errors.Errorf("unknown sample id %q", c.Sample)
		}
		j, ok := m.featureIdx[c.Feature]
		if !ok {
			return nil, errors.Errorf("unknown feature id %q", c.Feature)
		}
		if c.Frequency < 0 {
			return nil, errors.Errorf("negative frequency %v at (%q, %q)", c.Frequency, c.Sample, c.Feature)
		}
		if c.Frequency != 0 {
			m.rows[i][j] += c.Frequency
		}
	}
	return m.pruned(), nil
}

// newMatrix builds a matrix around the given rows without copying or
// validating them. Callers own the slices from here on.
func newMatrix(sampleIDs, featureIDs []string, rows []map[int]float64) *Matrix {
	m := &Matrix{
		sampleIDs:  sampleIDs,
		featureIDs: featureIDs,
		sampleIdx:  make(map[string]int, len(sampleIDs)),
		featureIdx: make(map[string]int, len(featureIDs)),
		rows:       rows,
	}
	for i, id := range sampleIDs {
		m.sampleIdx[id] = i
	}
	for j, id := range featureIDs {
		m.featureIdx[id] = j
	}
	return m
}

func checkIDs(ids []string, kind string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return errors.Errorf("empty %s id", kind)
		}
		if _, ok := seen[id]; ok {
			return errors.Errorf("duplicate %s id %q", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// pruned returns a matrix with all-zero sample rows and feature columns
// removed. It is the shared invariant-enforcement step run after every
// mutation; when nothing needs removing it returns the receiver.
func (m *Matrix) pruned() *Matrix {
	colUsed := make([]bool, len(m.featureIDs))
	keepRows, keepCols := 0, 0
	for _, row := range m.rows {
		if len(row) > 0 {
			keepRows++
		}
		for j := range row {
			if !colUsed[j] {
				colUsed[j] = true
				keepCols++
			}
		}
	}
	if keepRows == len(m.sampleIDs) && keepCols == len(m.featureIDs) {
		return m
	}

	colMap := make([]int, len(m.featureIDs))
	featureIDs := make([]string, 0, keepCols)
	for j, used := range colUsed {
		if used {
			colMap[j] = len(featureIDs)
			featureIDs = append(featureIDs, m.featureIDs[j])
		} else {
			colMap[j] = -1
		}
	}

	sampleIDs := make([]string, 0, keepRows)
	rows := make([]map[int]float64, 0, keepRows)
	for i, row := range m.rows {
		if len(row) == 0 {
			continue
		}
		nr := make(map[int]float64, len(row))
		for j, v := range row {
			nr[colMap[j]] = v
		}
		sampleIDs = append(sampleIDs, m.sampleIDs[i])
		rows = append(rows, nr)
	}
	return newMatrix(sampleIDs, featureIDs, rows)
}

// NumSamples returns the number of sample rows.
func (m *Matrix) NumSamples() int { return len(m.sampleIDs) }

// NumFeatures returns the number of feature columns.
func (m *Matrix) NumFeatures() int { return len(m.featureIDs) }

// SampleIDs returns the sample ids in canonical row order.
func (m *Matrix) SampleIDs() []string {
	out := make([]string, len(m.sampleIDs))
	copy(out, m.sampleIDs)
	return out
}

// FeatureIDs returns the feature ids in canonical column order.
func (m *Matrix) FeatureIDs() []string {
	out := make([]string, len(m.featureIDs))
	copy(out, m.featureIDs)
	return out
}

// HasSample reports whether the matrix contains the given sample id.
func (m *Matrix) HasSample(id string) bool {
	_, ok := m.sampleIdx[id]
	return ok
}

// HasFeature reports whether the matrix contains the given feature id.
func (m *Matrix) HasFeature(id string) bool {
	_, ok := m.featureIdx[id]
	return ok
}

// Value returns the frequency at (sample, feature), or zero when either
// id is unknown or the entry is absent.
func (m *Matrix) Value(sample, feature string) float64 {
	i, ok := m.sampleIdx[sample]
	if !ok {
		return 0
	}
	j, ok := m.featureIdx[feature]
	if !ok {
		return 0
	}
	return m.rows[i][j]
}

// SampleSum returns the total frequency of the given sample row.
func (m *Matrix) SampleSum(sample string) float64 {
	i, ok := m.sampleIdx[sample]
	if !ok {
		return 0
	}
	var sum float64
	for _, v := range m.rows[i] {
		sum += v
	}
	return sum
}

// FeatureSum returns the total frequency of the given feature column.
func (m *Matrix) FeatureSum(feature string) float64 {
	j, ok := m.featureIdx[feature]
	if !ok {
		return 0
	}
	var sum float64
	for _, row := range m.rows {
		sum += row[j]
	}
	return sum
}

// SampleFeatureCount returns the number of features observed (non-zero)
// in the given sample.
func (m *Matrix) SampleFeatureCount(sample string) int {
	i, ok := m.sampleIdx[sample]
	if !ok {
		return 0
	}
	return len(m.rows[i])
}

// FeatureSampleCount returns the number of samples the given feature is
// observed in.
func (m *Matrix) FeatureSampleCount(feature string) int {
	j, ok := m.featureIdx[feature]
	if !ok {
		return 0
	}
	n := 0
	for _, row := range m.rows {
		if _, ok := row[j]; ok {
			n++
		}
	}
	return n
}

// Sum returns the total frequency of the whole table.
func (m *Matrix) Sum() float64 {
	var sum float64
	for _, row := range m.rows {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Dense returns the table as a dense row-major slice in canonical order.
// Intended for output and tests; large sparse tables should use Cells.
func (m *Matrix) Dense() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		dr := make([]float64, len(m.featureIDs))
		for j, v := range row {
			dr[j] = v
		}
		out[i] = dr
	}
	return out
}

// Cells returns the non-zero entries in row-major canonical order.
func (m *Matrix) Cells() []Cell {
	var out []Cell
	for i, row := range m.rows {
		for j := 0; j < len(m.featureIDs); j++ {
			if v, ok := row[j]; ok {
				out = append(out, Cell{
					Sample:    m.sampleIDs[i],
					Feature:   m.featureIDs[j],
					Frequency: v,
				})
			}
		}
	}
	return out
}

// featureTotals returns per-column frequency sums in canonical order.
func (m *Matrix) featureTotals() []float64 {
	totals := make([]float64, len(m.featureIDs))
	for _, row := range m.rows {
		for j, v := range row {
			totals[j] += v
		}
	}
	return totals
}

// featureCounts returns per-column non-zero entry counts in canonical
// order.
func (m *Matrix) featureCounts() []int {
	counts := make([]int, len(m.featureIDs))
	for _, row := range m.rows {
		for j := range row {
			counts[j]++
		}
	}
	return counts
}

// rowSum returns the total frequency of row i.
func (m *Matrix) rowSum(i int) float64 {
	var sum float64
	for _, v := range m.rows[i] {
		sum += v
	}
	return sum
}

func cloneRow(row map[int]float64) map[int]float64 {
	nr := make(map[int]float64, len(row))
	for j, v := range row {
		nr[j] = v
	}
	return nr
}
