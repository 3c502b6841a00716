// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/molecula/featuretable/errors"
)

// WriteMatrixCSV writes the table as CSV: a header row holding "id"
// followed by the feature ids, then one row per sample in canonical
// order. Zero entries are written as 0; the sparse form is not preserved
// on the wire.
func WriteMatrixCSV(w io.Writer, m *Matrix) error {
	cw := csv.NewWriter(w)
	header := append([]string{"id"}, m.FeatureIDs()...)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing header")
	}
	sampleIDs := m.SampleIDs()
	for i, dr := range m.Dense() {
		record := make([]string, 0, len(dr)+1)
		record = append(record, sampleIDs[i])
		for _, v := range dr {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing row %q", sampleIDs[i])
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

// ReadMatrixCSV reads a table in the layout written by WriteMatrixCSV.
func ReadMatrixCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, errors.Errorf("table must have at least one sample and one feature")
	}

	featureIDs := records[0][1:]
	sampleIDs := make([]string, 0, len(records)-1)
	data := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(featureIDs)+1 {
			return nil, errors.Errorf("row %q has %d columns, want %d", record[0], len(record)-1, len(featureIDs))
		}
		dr := make([]float64, len(featureIDs))
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing frequency at (%q, %q)", record[0], featureIDs[j])
			}
			dr[j] = v
		}
		sampleIDs = append(sampleIDs, record[0])
		data = append(data, dr)
	}
	return NewMatrix(data, sampleIDs, featureIDs)
}

// WriteSideDataTSV writes a side data collection as two tab-separated
// columns, id then value, sorted by id.
func WriteSideDataTSV(w io.Writer, d SideData) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	for _, id := range sortedKeys(d) {
		if err := cw.Write([]string{id, d[id]}); err != nil {
			return errors.Wrapf(err, "writing entry %q", id)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing tsv")
}

// ReadSideDataTSV reads a side data collection in the layout written by
// WriteSideDataTSV. Duplicate ids are an error.
func ReadSideDataTSV(r io.Reader) (SideData, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 2
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading tsv")
	}
	d := make(SideData, len(records))
	for _, record := range records {
		if _, ok := d[record[0]]; ok {
			return nil, errors.Errorf("duplicate feature id %q", record[0])
		}
		d[record[0]] = record[1]
	}
	return d, nil
}

func sortedKeys(d SideData) []string {
	keys := make([]string, 0, len(d))
	for id := range d {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}
