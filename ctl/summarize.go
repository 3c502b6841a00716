// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	featuretable "github.com/molecula/featuretable"
)

// SummarizeCommand represents a command for printing tabular summary
// statistics of a feature table.
type SummarizeCommand struct {
	// Input table path and optional output path; defaults to STDOUT.
	Input  string
	Output string

	// Standard input/output
	*featuretable.CmdIO
}

// NewSummarizeCommand returns a new instance of SummarizeCommand.
func NewSummarizeCommand(stdin io.Reader, stdout, stderr io.Writer) *SummarizeCommand {
	return &SummarizeCommand{
		CmdIO: featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the summary.
func (cmd *SummarizeCommand) Run(ctx context.Context) error {
	if cmd.Input == "" {
		return fmt.Errorf("%w: input table required", UsageError)
	}

	m, err := readTable(cmd.Input)
	if err != nil {
		return err
	}
	s := featuretable.Summarize(m)

	w := cmd.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		defer f.Close()
		w = f
	}
	return writeSummary(w, s)
}

func writeSummary(w io.Writer, s *featuretable.Summary) error {
	_, err := fmt.Fprintf(w, `samples:         %d
features:        %d
total frequency: %v

sample frequency:  min %v, max %v, mean %v, median %v
feature frequency: min %v, max %v, mean %v, median %v
`,
		s.SampleCount, s.FeatureCount, s.TotalFrequency,
		s.Samples.Min, s.Samples.Max, s.Samples.Mean, s.Samples.Median,
		s.Features.Min, s.Features.Max, s.Features.Mean, s.Features.Median,
	)
	if err != nil {
		return errors.Wrap(err, "writing summary")
	}
	for _, f := range s.Samples.Frequencies {
		if _, err := fmt.Fprintf(w, "sample\t%s\t%v\n", f.ID, f.Frequency); err != nil {
			return errors.Wrap(err, "writing summary")
		}
	}
	for _, f := range s.Features.Frequencies {
		if _, err := fmt.Fprintf(w, "feature\t%s\t%v\n", f.ID, f.Frequency); err != nil {
			return errors.Wrap(err, "writing summary")
		}
	}
	return nil
}
