// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/pkg/errors"

	featuretable "github.com/molecula/featuretable"
)

// Ensure type implements interface.
var _ featuretable.IDSelector = (*TSVSelector)(nil)

// TSVSelector resolves id predicates against a metadata TSV file whose
// header names the columns and whose first column holds the ids. It is a
// minimal stand-in for a metadata service: the only predicate form it
// evaluates is a single "column=value" equality; an empty predicate
// selects every id present in the file.
type TSVSelector struct {
	columns []string
	rows    map[string][]string
}

// NewTSVSelector loads the metadata file at path.
func NewTSVSelector(path string) (*TSVSelector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening metadata")
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '\t'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading metadata %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("metadata %s has no header", path)
	}

	s := &TSVSelector{
		columns: records[0],
		rows:    make(map[string][]string, len(records)-1),
	}
	for _, record := range records[1:] {
		if _, ok := s.rows[record[0]]; ok {
			return nil, errors.Errorf("duplicate metadata id %q", record[0])
		}
		s.rows[record[0]] = record
	}
	return s, nil
}

// SelectIDs returns the subset of known ids matching the predicate, or
// all known ids with metadata when the predicate is empty.
func (s *TSVSelector) SelectIDs(known []string, where string) (map[string]struct{}, error) {
	col, value := -1, ""
	if where != "" {
		parts := strings.SplitN(where, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("predicate must have the form column=value, got %q", where)
		}
		for j, name := range s.columns {
			if name == parts[0] {
				col = j
				break
			}
		}
		if col < 0 {
			return nil, errors.Errorf("unknown metadata column %q", parts[0])
		}
		value = parts[1]
	}

	out := make(map[string]struct{})
	for _, id := range known {
		row, ok := s.rows[id]
		if !ok {
			continue
		}
		if col >= 0 && (col >= len(row) || row[col] != value) {
			continue
		}
		out[id] = struct{}{}
	}
	return out, nil
}
