// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package ctl contains the commands behind the featuretable binary. Each
// command is a struct whose fields are bound to flags by the cmd package
// and whose Run method does the work.
package ctl

import (
	"io"
	"os"

	"github.com/pkg/errors"

	featuretable "github.com/molecula/featuretable"
)

// UsageError wraps errors caused by bad arguments rather than failed
// work, so the caller can decide to print usage.
var UsageError = errors.New("usage error")

// readTable reads a feature table from a CSV file.
func readTable(path string) (*featuretable.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening table")
	}
	defer f.Close()
	m, err := featuretable.ReadMatrixCSV(f)
	return m, errors.Wrapf(err, "reading table %s", path)
}

// writeTable writes a feature table to a CSV file, or to w when path is
// empty.
func writeTable(path string, m *featuretable.Matrix, w io.Writer) error {
	if path == "" {
		return featuretable.WriteMatrixCSV(w, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer f.Close()
	return errors.Wrapf(featuretable.WriteMatrixCSV(f, m), "writing table %s", path)
}

// readSideData reads a side data collection from a TSV file.
func readSideData(path string) (featuretable.SideData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening side data")
	}
	defer f.Close()
	d, err := featuretable.ReadSideDataTSV(f)
	return d, errors.Wrapf(err, "reading side data %s", path)
}

// writeSideData writes a side data collection to a TSV file, or to w
// when path is empty.
func writeSideData(path string, d featuretable.SideData, w io.Writer) error {
	if path == "" {
		return featuretable.WriteSideDataTSV(w, d)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer f.Close()
	return errors.Wrapf(featuretable.WriteSideDataTSV(f, d), "writing side data %s", path)
}
