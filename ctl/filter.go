// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	featuretable "github.com/molecula/featuretable"
)

// FilterCommand represents a command for filtering samples or features
// out of a feature table.
type FilterCommand struct {
	// Input and output table paths. Output defaults to STDOUT.
	Input  string
	Output string

	// Axis is "samples" or "features".
	Axis string

	// Numeric bounds; zero-valued maximums mean unbounded.
	MinFrequency float64
	MaxFrequency float64
	MinCount     int
	MaxCount     int

	// Metadata is a TSV file whose first column holds ids; Where is an
	// optional "column=value" restriction evaluated against it.
	Metadata   string
	Where      string
	ExcludeIDs bool

	// Standard input/output
	*featuretable.CmdIO
}

// NewFilterCommand returns a new instance of FilterCommand.
func NewFilterCommand(stdin io.Reader, stdout, stderr io.Writer) *FilterCommand {
	return &FilterCommand{
		CmdIO: featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the filter.
func (cmd *FilterCommand) Run(ctx context.Context) error {
	logger := cmd.Logger()

	if cmd.Input == "" {
		return fmt.Errorf("%w: input table required", UsageError)
	}
	if cmd.Axis != "samples" && cmd.Axis != "features" {
		return fmt.Errorf("%w: axis must be samples or features, got %q", UsageError, cmd.Axis)
	}
	if cmd.Metadata == "" && cmd.Where != "" {
		return fmt.Errorf("%w: where requires a metadata file", UsageError)
	}

	m, err := readTable(cmd.Input)
	if err != nil {
		return err
	}

	f := featuretable.Filter{
		MinFrequency: cmd.MinFrequency,
		MaxFrequency: cmd.MaxFrequency,
		MinCount:     cmd.MinCount,
		MaxCount:     cmd.MaxCount,
		ExcludeIDs:   cmd.ExcludeIDs,
	}
	if cmd.Metadata != "" {
		selector, err := NewTSVSelector(cmd.Metadata)
		if err != nil {
			return err
		}
		known := m.SampleIDs()
		if cmd.Axis == "features" {
			known = m.FeatureIDs()
		}
		f.IDs, err = selector.SelectIDs(known, cmd.Where)
		if err != nil {
			return err
		}
		logger.Debugf("metadata selected %d of %d ids", len(f.IDs), len(known))
	}

	var out *featuretable.Matrix
	var report featuretable.FilterReport
	if cmd.Axis == "samples" {
		out, report, err = featuretable.FilterSamples(m, f)
	} else {
		out, report, err = featuretable.FilterFeatures(m, f)
	}
	if err != nil {
		return err
	}
	logger.Infof("filtered by %s: removed %d samples, %d features",
		cmd.Axis, report.SamplesRemoved, report.FeaturesRemoved)

	return writeTable(cmd.Output, out, cmd.Stdout)
}
