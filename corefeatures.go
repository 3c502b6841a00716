// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package featuretable

import (
	"github.com/molecula/featuretable/errors"
)

// FractionStep is one sampled occurrence-fraction threshold and the
// features that are core at it, in canonical column order.
type FractionStep struct {
	Fraction float64
	Features []string
}

// FractionSweep is the result of CoreFeatures: steps in strictly
// increasing fraction order. Because every feature's occurrence fraction
// is fixed, the feature set at a higher fraction is always a subset of
// the set at any lower one.
type FractionSweep struct {
	Steps []FractionStep
}

// FeaturesAt returns the core features at the given sampled fraction, or
// nil when the fraction was not part of the sweep.
func (fs *FractionSweep) FeaturesAt(fraction float64) []string {
	for _, step := range fs.Steps {
		if step.Fraction == fraction {
			return step.Features
		}
	}
	return nil
}

// CoreFeatures sweeps an occurrence-fraction threshold from minFraction
// to maxFraction inclusive in steps evenly spaced values and reports, for
// each, the features observed in at least that fraction of samples. When
// minFraction equals maxFraction a single value is sampled and steps is
// ignored.
//
// It returns ErrInvalidRange when either fraction falls outside (0, 1]
// or minFraction exceeds maxFraction, and ErrInvalidSteps when steps is
// below two for a non-degenerate range.
func CoreFeatures(m *Matrix, minFraction, maxFraction float64, steps int) (*FractionSweep, error) {
	if minFraction <= 0 || minFraction > 1 {
		return nil, errors.Newf(ErrInvalidRange, "minimum fraction %v is outside (0, 1]", minFraction)
	}
	if maxFraction <= 0 || maxFraction > 1 {
		return nil, errors.Newf(ErrInvalidRange, "maximum fraction %v is outside (0, 1]", maxFraction)
	}
	if minFraction > maxFraction {
		return nil, errors.Newf(ErrInvalidRange, "minimum fraction %v exceeds maximum fraction %v", minFraction, maxFraction)
	}

	var fractions []float64
	if minFraction == maxFraction {
		fractions = []float64{minFraction}
	} else {
		if steps < 2 {
			return nil, errors.Newf(ErrInvalidSteps, "steps must be at least 2, got %d", steps)
		}
		fractions = make([]float64, steps)
		span := maxFraction - minFraction
		for i := range fractions {
			fractions[i] = minFraction + span*float64(i)/float64(steps-1)
		}
		// guard against floating drift on the last step
		fractions[steps-1] = maxFraction
	}

	counts := m.featureCounts()
	n := float64(m.NumSamples())
	sweep := &FractionSweep{Steps: make([]FractionStep, len(fractions))}
	for i, f := range fractions {
		var core []string
		for j, id := range m.featureIDs {
			if float64(counts[j])/n >= f {
				core = append(core, id)
			}
		}
		sweep.Steps[i] = FractionStep{Fraction: f, Features: core}
	}
	return sweep, nil
}
