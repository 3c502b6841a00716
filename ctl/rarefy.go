// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	featuretable "github.com/molecula/featuretable"
)

// RarefyCommand represents a command for rarefying a feature table.
type RarefyCommand struct {
	// Input and output table paths. Output defaults to STDOUT.
	Input  string
	Output string

	// Total frequency each retained sample is subsampled to.
	Depth int64

	// Seed for the random source; 0 picks a time-based seed.
	Seed int64

	// Standard input/output
	*featuretable.CmdIO
}

// NewRarefyCommand returns a new instance of RarefyCommand.
func NewRarefyCommand(stdin io.Reader, stdout, stderr io.Writer) *RarefyCommand {
	return &RarefyCommand{
		CmdIO: featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the rarefaction.
func (cmd *RarefyCommand) Run(ctx context.Context) error {
	logger := cmd.Logger()

	if cmd.Input == "" {
		return fmt.Errorf("%w: input table required", UsageError)
	}

	m, err := readTable(cmd.Input)
	if err != nil {
		return err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Debugf("no seed given, using %d", seed)
	}

	out, err := featuretable.Rarefy(m, cmd.Depth, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	logger.Infof("rarefied to depth %d: kept %d of %d samples, %d of %d features",
		cmd.Depth, out.NumSamples(), m.NumSamples(), out.NumFeatures(), m.NumFeatures())

	return writeTable(cmd.Output, out, cmd.Stdout)
}
