// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	featuretable "github.com/molecula/featuretable"
	"github.com/molecula/featuretable/tablestore"
)

// StoreCommand represents a command for moving tables and side data in
// and out of a boltdb table store.
type StoreCommand struct {
	// Path to the store file.
	Path string

	// Action is one of put, get, ls, rm.
	Action string

	// Name of the entry inside the store.
	Name string

	// File is the CSV/TSV file to read from (put) or write to (get);
	// get defaults to STDOUT.
	File string

	// SideData selects the side data bucket instead of the table bucket.
	SideData bool

	// Standard input/output
	*featuretable.CmdIO
}

// NewStoreCommand returns a new instance of StoreCommand.
func NewStoreCommand(stdin io.Reader, stdout, stderr io.Writer) *StoreCommand {
	return &StoreCommand{
		CmdIO: featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the store action.
func (cmd *StoreCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return fmt.Errorf("%w: store path required", UsageError)
	}
	if cmd.Action != "ls" && cmd.Name == "" {
		return fmt.Errorf("%w: entry name required", UsageError)
	}

	s := tablestore.NewStore(cmd.Path)
	if err := s.Open(); err != nil {
		return err
	}
	defer s.Close()

	switch cmd.Action {
	case "put":
		if cmd.File == "" {
			return fmt.Errorf("%w: input file required for put", UsageError)
		}
		if cmd.SideData {
			d, err := readSideData(cmd.File)
			if err != nil {
				return err
			}
			return s.PutSideData(cmd.Name, d)
		}
		m, err := readTable(cmd.File)
		if err != nil {
			return err
		}
		return s.PutTable(cmd.Name, m)

	case "get":
		if cmd.SideData {
			d, err := s.SideData(cmd.Name)
			if err != nil {
				return err
			}
			return writeSideData(cmd.File, d, cmd.Stdout)
		}
		m, err := s.Table(cmd.Name)
		if err != nil {
			return err
		}
		return writeTable(cmd.File, m, cmd.Stdout)

	case "ls":
		names, err := s.Tables()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintf(cmd.Stdout, "table\t%s\n", name)
		}
		names, err = s.SideDataNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintf(cmd.Stdout, "sidedata\t%s\n", name)
		}
		return nil

	case "rm":
		if cmd.SideData {
			return s.DeleteSideData(cmd.Name)
		}
		return s.DeleteTable(cmd.Name)

	default:
		return fmt.Errorf("%w: unknown action %q", UsageError, cmd.Action)
	}
}
