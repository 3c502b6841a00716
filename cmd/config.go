// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Configer *ctl.ConfigCommand

func newConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Configer = ctl.NewConfigCommand(stdin, stdout, stderr)
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose, err := cmd.Flags().GetBool("verbose"); err == nil {
				Configer.Config.Verbose = verbose
			}
			return Configer.Run(context.Background())
		},
	}
	flags := configCmd.Flags()
	flags.Int64VarP(&Configer.Config.Seed, "seed", "", Configer.Config.Seed, "Default rarefaction seed.")
	flags.StringVarP(&Configer.Config.OverlapMethod, "overlap-method", "", Configer.Config.OverlapMethod, "Default merge overlap method.")
	return configCmd
}
