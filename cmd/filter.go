// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Filterer *ctl.FilterCommand

func newFilterCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Filterer = ctl.NewFilterCommand(stdin, stdout, stderr)
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter samples or features out of a table.",
		Long: `
Filters one axis of a table by total frequency, by the number of non-zero
entries on the orthogonal axis, and by ids selected from a metadata file.
Rows or columns left all-zero by the filtering are removed as well.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, Filterer.CmdIO)
			return Filterer.Run(context.Background())
		},
	}
	flags := filterCmd.Flags()
	flags.StringVarP(&Filterer.Input, "input", "i", "", "Input table CSV.")
	flags.StringVarP(&Filterer.Output, "output", "o", "", "Output table CSV; defaults to STDOUT.")
	flags.StringVarP(&Filterer.Axis, "axis", "a", "samples", "Axis to filter: samples or features.")
	flags.Float64VarP(&Filterer.MinFrequency, "min-frequency", "", 0, "Minimum total frequency to be retained.")
	flags.Float64VarP(&Filterer.MaxFrequency, "max-frequency", "", 0, "Maximum total frequency to be retained; 0 means unbounded.")
	flags.IntVarP(&Filterer.MinCount, "min-count", "", 0, "Minimum number of non-zero entries to be retained.")
	flags.IntVarP(&Filterer.MaxCount, "max-count", "", 0, "Maximum number of non-zero entries to be retained; 0 means unbounded.")
	flags.StringVarP(&Filterer.Metadata, "metadata", "m", "", "Metadata TSV used to select ids.")
	flags.StringVarP(&Filterer.Where, "where", "w", "", "column=value restriction on the metadata file.")
	flags.BoolVarP(&Filterer.ExcludeIDs, "exclude-ids", "", false, "Discard the selected ids instead of retaining them.")
	return filterCmd
}
