// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Summarizer *ctl.SummarizeCommand

func newSummarizeCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	summarizeCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print summary statistics of a table.",
		Long: `
Prints sample and feature counts, total frequency, and the per-axis
frequency distributions of a table.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, Summarizer.CmdIO)
			return Summarizer.Run(context.Background())
		},
	}
	Summarizer = ctl.NewSummarizeCommand(stdin, stdout, stderr)
	flags := summarizeCmd.Flags()
	flags.StringVarP(&Summarizer.Input, "input", "i", "", "Input table CSV.")
	flags.StringVarP(&Summarizer.Output, "output", "o", "", "Output file; defaults to STDOUT.")
	return summarizeCmd
}
