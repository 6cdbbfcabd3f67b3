/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/internal/tmath"
)

// Default parameters of the beta distribution.
const (
	DefaultBetaAlpha = 1.0
	DefaultBetaBeta  = 1.0
)

// BetaParams hold the two shape parameters of a beta distribution.
type BetaParams struct {
	Alpha float64
	Beta  float64
}

func validBeta(p BetaParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

// sampleBeta uses Gamma(a,1) / (Gamma(a,1) + Gamma(b,1)) ~ Beta(a,b).
func (r *Registry) sampleBeta(g generator.Generator, p BetaParams) float64 {
	x := r.gamma.Sample(g, GammaParams{Alpha: p.Alpha, Beta: DefaultGammaBeta})
	t := tmath.Redraw(func() float64 {
		return x + r.gamma.Sample(g, GammaParams{Alpha: p.Beta, Beta: DefaultGammaBeta})
	}, tmath.IsZero)
	return x / t
}

// Beta is the beta distribution on [0, 1].
type Beta struct {
	dist[BetaParams, float64]
}

// NewBeta returns a beta distribution with shape parameters alpha and beta.
// It fails with ErrInvalidParameter unless both are positive. With both
// shapes around 1e-9 or smaller the gamma draws are almost always
// numerically zero, and NextDouble panics once the redraw limit
// tmath.MaxRedraws is exhausted.
func NewBeta(alpha, beta float64, opts ...Option) (*Beta, error) {
	d, err := newDist("beta", (*Registry).Beta, BetaParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &Beta{d}, nil
}

// Alpha returns the first shape parameter.
func (d *Beta) Alpha() float64 { return d.p.Alpha }

// Beta returns the second shape parameter.
func (d *Beta) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is valid together with the current
// beta.
func (d *Beta) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is valid together with the current
// alpha.
func (d *Beta) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the first shape parameter.
func (d *Beta) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the second shape parameter.
func (d *Beta) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the first shape parameter set to
// alpha.
func (d *Beta) WithAlpha(alpha float64) (*Beta, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the second shape parameter set to beta.
func (d *Beta) WithBeta(beta float64) (*Beta, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Beta) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Beta) Maximum() float64 { return 1 }

// Mean returns the expected value.
func (d *Beta) Mean() (float64, error) {
	return d.p.Alpha / (d.p.Alpha + d.p.Beta), nil
}

// Median has no closed form.
func (d *Beta) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Beta) Variance() (float64, error) {
	a, b := d.p.Alpha, d.p.Beta
	return a * b / (tmath.Square(a+b) * (a + b + 1)), nil
}

// Mode returns the mode, or both ends of the support when the density is
// U-shaped. It is undefined for alpha = beta = 1.
func (d *Beta) Mode() ([]float64, error) {
	a, b := d.p.Alpha, d.p.Beta
	switch {
	case a > 1 && b > 1:
		return []float64{(a - 1) / (a + b - 2)}, nil
	case a < 1 && b < 1:
		return []float64{0, 1}, nil
	case (a < 1 && b >= 1) || (tmath.AreEqual(a, 1) && b > 1):
		return []float64{0}, nil
	case (a >= 1 && b < 1) || (a > 1 && tmath.AreEqual(b, 1)):
		return []float64{1}, nil
	}
	return nil, d.undefined("mode")
}

// NextDouble draws a beta distributed value.
func (d *Beta) NextDouble() float64 {
	return d.sample()
}
