// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	featuretable "github.com/molecula/featuretable"
)

// CoreFeaturesCommand represents a command for sweeping an occurrence
// fraction threshold over a feature table.
type CoreFeaturesCommand struct {
	// Input table path and output path for the sweep TSV. Output
	// defaults to STDOUT.
	Input  string
	Output string

	MinFraction float64
	MaxFraction float64
	Steps       int

	// Standard input/output
	*featuretable.CmdIO
}

// NewCoreFeaturesCommand returns a new instance of CoreFeaturesCommand.
func NewCoreFeaturesCommand(stdin io.Reader, stdout, stderr io.Writer) *CoreFeaturesCommand {
	return &CoreFeaturesCommand{
		MinFraction: 0.5,
		MaxFraction: 1.0,
		Steps:       11,
		CmdIO:       featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the sweep.
func (cmd *CoreFeaturesCommand) Run(ctx context.Context) error {
	if cmd.Input == "" {
		return fmt.Errorf("%w: input table required", UsageError)
	}

	m, err := readTable(cmd.Input)
	if err != nil {
		return err
	}

	sweep, err := featuretable.CoreFeatures(m, cmd.MinFraction, cmd.MaxFraction, cmd.Steps)
	if err != nil {
		return err
	}

	w := cmd.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer f.Close()
		w = f
	}
	return writeSweep(w, sweep)
}

// writeSweep writes one TSV row per sampled fraction: the fraction, the
// core feature count, and the semicolon-joined feature ids.
func writeSweep(w io.Writer, sweep *featuretable.FractionSweep) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	for _, step := range sweep.Steps {
		record := []string{
			strconv.FormatFloat(step.Fraction, 'f', -1, 64),
			strconv.Itoa(len(step.Features)),
			strings.Join(step.Features, ";"),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing sweep row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing sweep")
}
