// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	featuretable "github.com/molecula/featuretable"
	"github.com/molecula/featuretable/logger"
)

const testTableCSV = "id,f1,f2,f3\nS1,10,0,5\nS2,0,3,2\n"

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRarefyCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewRarefyCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Input = writeFile(t, "table.csv", testTableCSV)
	cmd.Depth = 3
	cmd.Seed = 42

	require.NoError(t, cmd.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3, "header plus both samples")
	assert.True(t, strings.HasPrefix(lines[0], "id,"))

	t.Run("MissingInput", func(t *testing.T) {
		cmd := NewRarefyCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.Depth = 3
		err := cmd.Run(context.Background())
		assert.ErrorIs(t, err, UsageError)
	})

	t.Run("VerboseLogsSeed", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := NewRarefyCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.SetVerbose(true)
		cmd.Input = writeFile(t, "table.csv", testTableCSV)
		cmd.Depth = 3

		require.NoError(t, cmd.Run(context.Background()))
		assert.Contains(t, stderr.String(), "no seed given")

		// At the default level the same run logs nothing about the seed.
		stderr.Reset()
		cmd.SetVerbose(false)
		require.NoError(t, cmd.Run(context.Background()))
		assert.NotContains(t, stderr.String(), "no seed given")
	})
}

func TestFilterCommand(t *testing.T) {
	t.Run("Samples", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := NewFilterCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.Input = writeFile(t, "table.csv", testTableCSV)
		cmd.Axis = "samples"
		cmd.MinFrequency = 10

		require.NoError(t, cmd.Run(context.Background()))
		assert.Equal(t, "id,f1,f3\nS1,10,5\n", stdout.String())
	})

	t.Run("FeaturesWithMetadata", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := NewFilterCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.Input = writeFile(t, "table.csv", testTableCSV)
		cmd.Metadata = writeFile(t, "meta.tsv", "id\ttaxon\nf1\tFirmicutes\nf3\tBacteroidetes\n")
		cmd.Axis = "features"
		cmd.Where = "taxon=Firmicutes"

		require.NoError(t, cmd.Run(context.Background()))
		assert.Equal(t, "id,f1\nS1,10\n", stdout.String())
	})

	t.Run("LogsRemovals", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := NewFilterCommand(strings.NewReader(""), &stdout, &stderr)
		buf := logger.NewBufferLogger()
		cmd.SetLogger(buf)
		cmd.Input = writeFile(t, "table.csv", testTableCSV)
		cmd.Axis = "samples"
		cmd.MinFrequency = 10

		require.NoError(t, cmd.Run(context.Background()))
		logged, err := buf.ReadAll()
		require.NoError(t, err)
		assert.Contains(t, string(logged), "removed 1 samples, 1 features")
	})

	t.Run("BadAxis", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := NewFilterCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.Input = writeFile(t, "table.csv", testTableCSV)
		cmd.Axis = "rows"
		assert.ErrorIs(t, cmd.Run(context.Background()), UsageError)
	})
}

func TestMergeCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewMergeCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.SetLogger(logger.NewLogfLogger(t))
	cmd.Input1 = writeFile(t, "a.csv", "id,f1\nS1,1\n")
	cmd.Input2 = writeFile(t, "b.csv", "id,f1,f2\nS2,2,3\n")

	require.NoError(t, cmd.Run(context.Background()))
	assert.Equal(t, "id,f1,f2\nS1,1,0\nS2,2,3\n", stdout.String())
}

func TestMergeDataCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewMergeDataCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Input1 = writeFile(t, "a.tsv", "f1\tACGT\n")
	cmd.Input2 = writeFile(t, "b.tsv", "f1\tTTTT\nf2\tGGGG\n")

	require.NoError(t, cmd.Run(context.Background()))
	assert.Equal(t, "f1\tACGT\nf2\tGGGG\n", stdout.String())
}

func TestCoreFeaturesCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewCoreFeaturesCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Input = writeFile(t, "table.csv", testTableCSV)
	cmd.MinFraction = 0.5
	cmd.MaxFraction = 1.0
	cmd.Steps = 2

	require.NoError(t, cmd.Run(context.Background()))
	assert.Equal(t, "0.5\t3\tf1;f2;f3\n1\t1\tf3\n", stdout.String())
}

func TestSummarizeCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewSummarizeCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Input = writeFile(t, "table.csv", testTableCSV)

	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, stdout.String(), "samples:         2")
	assert.Contains(t, stdout.String(), "sample\tS1\t15")
}

func TestStoreCommand(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "tables.db")
	tablePath := writeFile(t, "table.csv", testTableCSV)

	run := func(t *testing.T, mutate func(*StoreCommand)) string {
		t.Helper()
		var stdout, stderr bytes.Buffer
		cmd := NewStoreCommand(strings.NewReader(""), &stdout, &stderr)
		cmd.Path = storePath
		mutate(cmd)
		require.NoError(t, cmd.Run(context.Background()))
		return stdout.String()
	}

	run(t, func(cmd *StoreCommand) {
		cmd.Action = "put"
		cmd.Name = "survey"
		cmd.File = tablePath
	})

	out := run(t, func(cmd *StoreCommand) {
		cmd.Action = "ls"
	})
	assert.Equal(t, "table\tsurvey\n", out)

	out = run(t, func(cmd *StoreCommand) {
		cmd.Action = "get"
		cmd.Name = "survey"
	})
	assert.Equal(t, testTableCSV, out)

	run(t, func(cmd *StoreCommand) {
		cmd.Action = "rm"
		cmd.Name = "survey"
	})
	out = run(t, func(cmd *StoreCommand) {
		cmd.Action = "ls"
	})
	assert.Empty(t, out)
}

func TestZeroCmdIOLogsToStderr(t *testing.T) {
	var cmdIO featuretable.CmdIO
	assert.Equal(t, logger.StderrLogger, cmdIO.Logger())
}

func TestTSVSelector(t *testing.T) {
	path := writeFile(t, "meta.tsv", "id\tbody-site\tsubject\nS1\tgut\ta\nS2\ttongue\tb\nS3\tgut\tb\n")
	s, err := NewTSVSelector(path)
	require.NoError(t, err)

	known := []string{"S1", "S2", "S4"}

	t.Run("EmptyPredicate", func(t *testing.T) {
		ids, err := s.SelectIDs(known, "")
		require.NoError(t, err)
		assert.Equal(t, map[string]struct{}{"S1": {}, "S2": {}}, ids)
	})

	t.Run("Equality", func(t *testing.T) {
		ids, err := s.SelectIDs(known, "body-site=gut")
		require.NoError(t, err)
		assert.Equal(t, map[string]struct{}{"S1": {}}, ids)
	})

	t.Run("BadPredicate", func(t *testing.T) {
		_, err := s.SelectIDs(known, "body-site")
		assert.Error(t, err)
		_, err = s.SelectIDs(known, "nope=x")
		assert.Error(t, err)
	})
}
