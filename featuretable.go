// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package featuretable implements transforms over sparse sample×feature
// frequency tables as used in count-based abundance analysis: rarefaction,
// frequency normalization, threshold- and metadata-driven filtering,
// table and side-data merging, and core-feature fraction sweeps.
//
// Every operation takes one or two Matrix values plus parameters and
// returns a new Matrix; inputs are never mutated. A Matrix keeps the
// structural invariant that every sample row and feature column has at
// least one non-zero frequency, so operations that could leave an
// all-zero row or column drop it before returning.
package featuretable

import (
	"io"

	"github.com/molecula/featuretable/errors"
	"github.com/molecula/featuretable/logger"
)

// Error codes returned by operations in this package. Check them with
// errors.Is from github.com/molecula/featuretable/errors.
const (
	// ErrInvalidDepth indicates a non-positive rarefaction sampling depth.
	ErrInvalidDepth errors.Code = "InvalidDepth"

	// ErrInvalidRange indicates a lower bound above its upper bound, or a
	// fraction outside (0, 1].
	ErrInvalidRange errors.Code = "InvalidRange"

	// ErrInvalidSteps indicates a core-feature sweep with fewer than two
	// steps over a non-degenerate fraction range.
	ErrInvalidSteps errors.Code = "InvalidSteps"

	// ErrInvalidOverlapMethod indicates an unrecognized merge overlap
	// method.
	ErrInvalidOverlapMethod errors.Code = "InvalidOverlapMethod"

	// ErrEmptyValue indicates a sample row whose frequencies sum to zero.
	ErrEmptyValue errors.Code = "EmptyValue"

	// ErrEmptyResult indicates an operation whose result would have no
	// samples or no features left.
	ErrEmptyResult errors.Code = "EmptyResult"

	// ErrOverlapConflict indicates a merge under the
	// error_on_overlapping_sample policy where the inputs share sample
	// ids.
	ErrOverlapConflict errors.Code = "OverlapConflict"
)

// IDSelector resolves an externally-specified predicate over sample or
// feature metadata to the subset of known ids matching it. An empty
// predicate selects every known id the selector has metadata for. The
// filtering operations never interpret predicates themselves; they only
// consume the resolved id set.
type IDSelector interface {
	SelectIDs(known []string, where string) (map[string]struct{}, error)
}

// CmdIO holds standard unix inputs and outputs.
type CmdIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger logger.Logger
}

// NewCmdIO returns a new instance of CmdIO with inputs and outputs set to
// the arguments.
func NewCmdIO(stdin io.Reader, stdout, stderr io.Writer) *CmdIO {
	return &CmdIO{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		logger: logger.NewStandardLogger(stderr),
	}
}

// Logger returns the command's logger. A zero-value CmdIO logs to
// standard error.
func (c *CmdIO) Logger() logger.Logger {
	if c.logger == nil {
		return logger.StderrLogger
	}
	return c.logger
}

// SetLogger replaces the command's logger.
func (c *CmdIO) SetLogger(l logger.Logger) {
	c.logger = l
}

// SetVerbose switches the command's logger on Stderr between info and
// debug level output.
func (c *CmdIO) SetVerbose(verbose bool) {
	if verbose {
		c.logger = logger.NewVerboseLogger(c.Stderr)
	} else {
		c.logger = logger.NewStandardLogger(c.Stderr)
	}
}
