// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var CoreFeaturer *ctl.CoreFeaturesCommand

func newCoreFeaturesCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	CoreFeaturer = ctl.NewCoreFeaturesCommand(stdin, stdout, stderr)
	coreCmd := &cobra.Command{
		Use:   "core-features",
		Short: "Identify features observed in a fraction of samples.",
		Long: `
Sweeps an occurrence-fraction threshold between min-fraction and
max-fraction and writes, for each sampled fraction, the features observed
in at least that fraction of samples.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, CoreFeaturer.CmdIO)
			return CoreFeaturer.Run(context.Background())
		},
	}
	flags := coreCmd.Flags()
	flags.StringVarP(&CoreFeaturer.Input, "input", "i", "", "Input table CSV.")
	flags.StringVarP(&CoreFeaturer.Output, "output", "o", "", "Output TSV; defaults to STDOUT.")
	flags.Float64VarP(&CoreFeaturer.MinFraction, "min-fraction", "", CoreFeaturer.MinFraction, "Lowest occurrence fraction sampled.")
	flags.Float64VarP(&CoreFeaturer.MaxFraction, "max-fraction", "", CoreFeaturer.MaxFraction, "Highest occurrence fraction sampled.")
	flags.IntVarP(&CoreFeaturer.Steps, "steps", "s", CoreFeaturer.Steps, "Number of fractions sampled between min and max.")
	return coreCmd
}
