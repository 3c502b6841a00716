// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package errors_test

import (
	"fmt"
	"testing"

	"github.com/molecula/featuretable/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		uncoded := errors.New(errUncoded, "uncoded error")
		depth := newErrInvalidDepth(-3)
		empty := newErrEmptyResult("no samples retained")
		depthCustom := errors.New(errInvalidDepth, "custom depth message")

		tests := []struct {
			err    error
			target errors.Code
			exp    bool
		}{
			{
				err:    uncoded,
				target: errUncoded,
				exp:    true,
			},
			{
				err:    uncoded,
				target: errInvalidDepth,
				exp:    false,
			},
			{
				err:    depth,
				target: errInvalidDepth,
				exp:    true,
			},
			{
				err:    depth,
				target: errEmptyResult,
				exp:    false,
			},
			{
				err:    errors.Wrap(empty, "with message"),
				target: errEmptyResult,
				exp:    true,
			},
			{
				err:    depthCustom,
				target: errInvalidDepth,
				exp:    true,
			},
		}

		for i, test := range tests {
			t.Run(fmt.Sprintf("test-%d", i), func(t *testing.T) {
				got := errors.Is(test.err, test.target)
				assert.Equal(t, test.exp, got)
			})
		}
	})

	t.Run("Uncoded", func(t *testing.T) {
		err := errors.Errorf("plain error: %d", 42)
		assert.False(t, errors.Is(err, errUncoded))
		assert.Equal(t, "plain error: 42", errors.Cause(err).Error())
	})
}

// Test error codes.

const (
	errUncoded      errors.Code = "Uncoded"
	errInvalidDepth errors.Code = "InvalidDepth"
	errEmptyResult  errors.Code = "EmptyResult"
)

func newErrInvalidDepth(depth int64) error {
	return errors.New(
		errInvalidDepth,
		fmt.Sprintf("sampling depth must be positive, got %d", depth),
	)
}

func newErrEmptyResult(message string) error {
	return errors.New(
		errEmptyResult,
		message,
	)
}
