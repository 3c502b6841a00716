// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/molecula/featuretable/ctl"
)

var Storer *ctl.StoreCommand

func newStoreCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Storer = ctl.NewStoreCommand(stdin, stdout, stderr)
	storeCmd := &cobra.Command{
		Use:   "store ACTION",
		Short: "Keep tables and side data in a local table store.",
		Long: `
Moves tables and side data collections in and out of a local boltdb table
store. ACTION is one of put, get, ls, rm.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyVerbose(cmd, Storer.CmdIO)
			Storer.Action = args[0]
			return Storer.Run(context.Background())
		},
	}
	flags := storeCmd.Flags()
	flags.StringVarP(&Storer.Path, "path", "p", "", "Store file path.")
	flags.StringVarP(&Storer.Name, "name", "n", "", "Entry name inside the store.")
	flags.StringVarP(&Storer.File, "file", "f", "", "CSV/TSV file to read from (put) or write to (get).")
	flags.BoolVarP(&Storer.SideData, "side-data", "", false, "Operate on side data instead of tables.")
	return storeCmd
}
