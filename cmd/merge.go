// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Merger *ctl.MergeCommand

func newMergeCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Merger = ctl.NewMergeCommand(stdin, stdout, stderr)
	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Combine two tables into one.",
		Long: `
Combines a pair of feature tables. Features are always unioned, with
entries present in both tables summed. Samples present in both tables are
resolved by the overlap method: error_on_overlapping_sample, union, or
first.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, Merger.CmdIO)
			return Merger.Run(context.Background())
		},
	}
	flags := mergeCmd.Flags()
	flags.StringVarP(&Merger.Input1, "input1", "1", "", "First input table CSV.")
	flags.StringVarP(&Merger.Input2, "input2", "2", "", "Second input table CSV.")
	flags.StringVarP(&Merger.Output, "output", "o", "", "Output table CSV; defaults to STDOUT.")
	flags.StringVarP(&Merger.OverlapMethod, "overlap-method", "", Merger.OverlapMethod, "Method for handling overlapping sample ids.")
	return mergeCmd
}

var DataMerger *ctl.MergeDataCommand

func newMergeDataCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	DataMerger = ctl.NewMergeDataCommand(stdin, stdout, stderr)
	mergeDataCmd := &cobra.Command{
		Use:   "merge-data",
		Short: "Combine two side data collections.",
		Long: `
Combines a pair of feature side data collections (sequences or
taxonomies). When a feature id exists in both, the first input's value is
kept.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, DataMerger.CmdIO)
			return DataMerger.Run(context.Background())
		},
	}
	flags := mergeDataCmd.Flags()
	flags.StringVarP(&DataMerger.Input1, "input1", "1", "", "First input TSV.")
	flags.StringVarP(&DataMerger.Input2, "input2", "2", "", "Second input TSV.")
	flags.StringVarP(&DataMerger.Output, "output", "o", "", "Output TSV; defaults to STDOUT.")
	return mergeDataCmd
}
