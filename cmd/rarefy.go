// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Rarefier *ctl.RarefyCommand

func newRarefyCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Rarefier = ctl.NewRarefyCommand(stdin, stdout, stderr)
	rarefyCmd := &cobra.Command{
		Use:   "rarefy",
		Short: "Subsample a table to an even depth.",
		Long: `
Subsamples frequencies from each sample without replacement so that every
retained sample sums to exactly the sampling depth. Samples whose total
frequency is below the depth are dropped from the table.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, Rarefier.CmdIO)
			return Rarefier.Run(context.Background())
		},
	}
	flags := rarefyCmd.Flags()
	flags.StringVarP(&Rarefier.Input, "input", "i", "", "Input table CSV.")
	flags.StringVarP(&Rarefier.Output, "output", "o", "", "Output table CSV; defaults to STDOUT.")
	flags.Int64VarP(&Rarefier.Depth, "depth", "d", 0, "Sampling depth each sample is rarefied to.")
	flags.Int64VarP(&Rarefier.Seed, "seed", "", 0, "Seed for the random source; 0 uses a time-based seed.")
	return rarefyCmd
}
