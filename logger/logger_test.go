// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package logger

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestStandardLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(&buf)

	l.Debugf("quiet %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected Debugf to be dropped at info level, got %q", buf.String())
	}

	l.Infof("loud %d", 2)
	if !strings.Contains(buf.String(), "INFO:  loud 2") {
		t.Fatalf("expected an info line, got %q", buf.String())
	}

	l.Errorf("bad %d", 3)
	if !strings.Contains(buf.String(), "ERROR: bad 3") {
		t.Fatalf("expected an error line, got %q", buf.String())
	}
}

func TestVerboseLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewVerboseLogger(&buf)

	l.Debugf("noisy %d", 1)
	if !strings.Contains(buf.String(), "DEBUG: noisy 1") {
		t.Fatalf("expected a debug line at debug level, got %q", buf.String())
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(&buf).WithPrefix("sub: ")

	l.Infof("hello")
	if !strings.Contains(buf.String(), "sub: ") {
		t.Fatalf("expected the prefix in output, got %q", buf.String())
	}
}

func TestBufferLogger(t *testing.T) {
	b := NewBufferLogger()
	b.Infof("kept %d", 1)
	b.Debugf("dropped %d", 2)

	out, err := b.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "INFO:  kept 1") {
		t.Fatalf("expected the info line in the buffer, got %q", string(out))
	}
	if strings.Contains(string(out), "dropped") {
		t.Fatalf("expected the debug line to be dropped, got %q", string(out))
	}
}

type recordingLogfer struct {
	lines []string
}

func (r *recordingLogfer) Logf(format string, v ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func TestLogfLogger(t *testing.T) {
	r := &recordingLogfer{}
	l := NewLogfLogger(r)

	l.Printf("a %d", 1)
	l.Errorf("b %d", 2)
	if len(r.lines) != 2 || r.lines[0] != "a 1" || r.lines[1] != "b 2" {
		t.Fatalf("unexpected recorded lines: %v", r.lines)
	}
}
