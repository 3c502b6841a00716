// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	featuretable "github.com/molecula/featuretable"
)

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "featuretable",
		Short: "featuretable transforms, filters, merges, and summarizes sample by feature frequency tables.",
		Long: `featuretable transforms, filters, merges, and summarizes sample by feature
frequency tables, such as those produced by molecular survey pipelines.

Tables are exchanged as CSV files (see the import/export layout in the
package documentation) and can be kept in a local table store.
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			return setAllConfig(v, cmd.Flags())
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")

	rc.AddCommand(newRarefyCommand(stdin, stdout, stderr))
	rc.AddCommand(newFilterCommand(stdin, stdout, stderr))
	rc.AddCommand(newMergeCommand(stdin, stdout, stderr))
	rc.AddCommand(newMergeDataCommand(stdin, stdout, stderr))
	rc.AddCommand(newCoreFeaturesCommand(stdin, stdout, stderr))
	rc.AddCommand(newSummarizeCommand(stdin, stdout, stderr))
	rc.AddCommand(newStoreCommand(stdin, stdout, stderr))
	rc.AddCommand(newConfigCommand(stdin, stdout, stderr))

	rc.SetOutput(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command
// line, the environment, and a config file (if specified), and applies
// the configuration in that priority order.
//
// Environment variables are capitalized versions of the flag names with
// dashes replaced by underscores, prefixed with FEATURETABLE plus an
// underscore.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix("FEATURETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	c := v.GetString("config")
	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file '%s': %v", c, err)
		}
		for _, key := range v.AllKeys() {
			if _, ok := validTags[key]; !ok {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}
		value := v.GetString(f.Name)
		if f.Changed || value == f.DefValue {
			return
		}
		if err := flags.Set(f.Name, value); err != nil {
			flagErr = err
		}
	})
	return flagErr
}

// applyVerbose switches a command's logger to debug level output when
// the verbose flag is set.
func applyVerbose(cmd *cobra.Command, cmdIO *featuretable.CmdIO) {
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		cmdIO.SetVerbose(true)
	}
}
