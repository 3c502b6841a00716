// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	featuretable "github.com/molecula/featuretable"
)

// MergeCommand represents a command for combining two feature tables.
type MergeCommand struct {
	// Input table paths and the output path. Output defaults to STDOUT.
	Input1 string
	Input2 string
	Output string

	// OverlapMethod resolves sample ids present in both tables.
	OverlapMethod string

	// Standard input/output
	*featuretable.CmdIO
}

// NewMergeCommand returns a new instance of MergeCommand.
func NewMergeCommand(stdin io.Reader, stdout, stderr io.Writer) *MergeCommand {
	return &MergeCommand{
		OverlapMethod: string(featuretable.OverlapError),
		CmdIO:         featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the merge.
func (cmd *MergeCommand) Run(ctx context.Context) error {
	logger := cmd.Logger()

	if cmd.Input1 == "" || cmd.Input2 == "" {
		return fmt.Errorf("%w: two input tables required", UsageError)
	}

	t1, err := readTable(cmd.Input1)
	if err != nil {
		return err
	}
	t2, err := readTable(cmd.Input2)
	if err != nil {
		return err
	}

	out, report, err := featuretable.Merge(t1, t2, featuretable.OverlapMethod(cmd.OverlapMethod))
	if err != nil {
		return err
	}
	logger.Infof("merged %d+%d samples into %d (%d overlapping samples, %d overlapping features)",
		t1.NumSamples(), t2.NumSamples(), out.NumSamples(),
		report.OverlappingSamples, report.OverlappingFeatures)

	return writeTable(cmd.Output, out, cmd.Stdout)
}

// MergeDataCommand represents a command for combining two side data
// collections (feature sequences or taxonomies).
type MergeDataCommand struct {
	// Input TSV paths and the output path. Output defaults to STDOUT.
	Input1 string
	Input2 string
	Output string

	// Standard input/output
	*featuretable.CmdIO
}

// NewMergeDataCommand returns a new instance of MergeDataCommand.
func NewMergeDataCommand(stdin io.Reader, stdout, stderr io.Writer) *MergeDataCommand {
	return &MergeDataCommand{
		CmdIO: featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the side data merge.
func (cmd *MergeDataCommand) Run(ctx context.Context) error {
	if cmd.Input1 == "" || cmd.Input2 == "" {
		return fmt.Errorf("%w: two input files required", UsageError)
	}

	d1, err := readSideData(cmd.Input1)
	if err != nil {
		return err
	}
	d2, err := readSideData(cmd.Input2)
	if err != nil {
		return err
	}

	out := featuretable.MergeSideData(d1, d2)
	cmd.Logger().Infof("merged %d+%d entries into %d", len(d1), len(d2), len(out))

	return writeSideData(cmd.Output, out, cmd.Stdout)
}
