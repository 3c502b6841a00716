// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	featuretable "github.com/molecula/featuretable"
)

// Config names the TOML keys a --config file may set. Each toml tag
// matches the flag name the cmd package's layering feeds the value to,
// so a file value applies only when the corresponding flag is not given
// on the command line. The struct itself is only read by the config
// command, which prints the effective values.
type Config struct {
	// Seed feeds rarefy's --seed flag.
	Seed int64 `toml:"seed"`

	// OverlapMethod feeds merge's --overlap-method flag.
	OverlapMethod string `toml:"overlap-method"`

	// Verbose feeds the persistent --verbose flag, which switches every
	// command's logger to debug level.
	Verbose bool `toml:"verbose"`
}

// NewConfig returns a Config with the defaults set.
func NewConfig() *Config {
	return &Config{
		OverlapMethod: string(featuretable.OverlapError),
	}
}

// ConfigCommand represents a command for printing the effective
// configuration as TOML.
type ConfigCommand struct {
	Config *Config

	// Standard input/output
	*featuretable.CmdIO
}

// NewConfigCommand returns a new instance of ConfigCommand.
func NewConfigCommand(stdin io.Reader, stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{
		Config: NewConfig(),
		CmdIO:  featuretable.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run prints the current configuration.
func (cmd *ConfigCommand) Run(ctx context.Context) error {
	buf, err := toml.Marshal(*cmd.Config)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	_, err = cmd.Stdout.Write(buf)
	return errors.Wrap(err, "writing config")
}
