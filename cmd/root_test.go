// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd_test

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/molecula/featuretable/cmd"
	"github.com/spf13/cobra"
)

// tExec executes the given `cmd`, which will be writing its output to `w`, and
// can be read from `out`. It will fail the test if the command does not return
// within 1 second. Useful for testing help messages and such.
func tExec(t *testing.T, cmd *cobra.Command, out io.Reader, w io.WriteCloser) (output []byte) {
	done := make(chan struct{})
	go func() {
		var err error
		output, err = io.ReadAll(out)
		if err != nil {
			t.Error(err)
		}
		close(done)
	}()
	err := cmd.Execute()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing cmd's stdout: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second * 1):
		t.Fatal("Test failed due to command execution timeout")
	}
	return output
}

// ExecNewRootCommand executes the featuretable root command with the given
// arguments and returns its output. It will fail if the command does not
// complete within 1 second.
func ExecNewRootCommand(t *testing.T, args ...string) string {
	out, w := io.Pipe()
	rc := cmd.NewRootCommand(os.Stdin, w, w)
	rc.SetArgs(args)
	output := tExec(t, rc, out, w)
	return string(output)
}

func TestRootCommand(t *testing.T) {
	outStr := ExecNewRootCommand(t, "--help")
	if !strings.Contains(outStr, "Usage:") ||
		!strings.Contains(outStr, "Available Commands:") ||
		!strings.Contains(outStr, "--help") {
		t.Fatalf("Expected standard usage message from RootCommand, but got: %s", outStr)
	}
}

func TestVerboseFlag(t *testing.T) {
	input, err := os.CreateTemp("", "ft-input")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(input.Name())
	if _, err := input.WriteString("id,f1,f2,f3\nS1,10,0,5\nS2,0,3,2\n"); err != nil {
		t.Fatal(err)
	}
	if err := input.Close(); err != nil {
		t.Fatal(err)
	}

	// With --verbose the time-based seed choice is logged at debug level.
	output := ExecNewRootCommand(t, "rarefy", "--input", input.Name(), "--depth", "3", "--verbose")
	if !strings.Contains(output, "no seed given") {
		t.Fatalf("Expected a debug line from verbose run, but got: %s", output)
	}

	output = ExecNewRootCommand(t, "rarefy", "--input", input.Name(), "--depth", "3")
	if strings.Contains(output, "no seed given") {
		t.Fatalf("Expected no debug line without verbose, but got: %s", output)
	}
}

func TestRarefyHelp(t *testing.T) {
	output := ExecNewRootCommand(t, "rarefy", "--help")
	if !strings.Contains(output, "depth") || !strings.Contains(output, "seed") {
		t.Fatalf("Expected rarefy help to mention its flags, but got: %s", output)
	}
}

func TestFilterConfig(t *testing.T) {
	file, err := os.CreateTemp("", "ft-config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(file.Name())
	if _, err := file.WriteString("min-count = 2\n"); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	input, err := os.CreateTemp("", "ft-input")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(input.Name())
	if _, err := input.WriteString("id,f1,f2,f3\nS1,10,0,5\nS2,0,3,2\n"); err != nil {
		t.Fatal(err)
	}
	if err := input.Close(); err != nil {
		t.Fatal(err)
	}

	out, w := io.Pipe()
	rc := cmd.NewRootCommand(os.Stdin, w, w)
	rc.SetArgs([]string{"filter", "--axis", "samples", "--input", input.Name(), "--config", file.Name()})
	tExec(t, rc, out, w)

	if cmd.Filterer.MinCount != 2 {
		t.Fatalf("Expected min-count from config file to be applied, got %d", cmd.Filterer.MinCount)
	}
}

func TestConfigPrecedence(t *testing.T) {
	file, err := os.CreateTemp("", "ft-config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(file.Name())
	if _, err := file.WriteString("depth = 3\n"); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}

	input, err := os.CreateTemp("", "ft-input")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(input.Name())
	if _, err := input.WriteString("id,f1,f2,f3\nS1,10,0,5\nS2,0,3,2\n"); err != nil {
		t.Fatal(err)
	}
	if err := input.Close(); err != nil {
		t.Fatal(err)
	}

	out, w := io.Pipe()
	rc := cmd.NewRootCommand(os.Stdin, w, w)
	rc.SetArgs([]string{"rarefy", "--input", input.Name(), "--depth", "5", "--config", file.Name()})
	tExec(t, rc, out, w)

	if cmd.Rarefier.Depth != 5 {
		t.Fatalf("Expected command line depth to override config file, got %d", cmd.Rarefier.Depth)
	}
}
