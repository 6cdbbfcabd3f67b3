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
	"math"

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/internal/tmath"
)

// Default parameters of the beta prime distribution.
const (
	DefaultBetaPrimeAlpha = 1.0
	DefaultBetaPrimeBeta  = 1.0
)

// BetaPrimeParams hold the two shape parameters of a beta prime
// distribution.
type BetaPrimeParams struct {
	Alpha float64
	Beta  float64
}

func validBetaPrime(p BetaPrimeParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

// sampleBetaPrime uses Gamma(a,1) / Gamma(b,1) ~ BetaPrime(a,b).
func (r *Registry) sampleBetaPrime(g generator.Generator, p BetaPrimeParams) float64 {
	x := r.gamma.Sample(g, GammaParams{Alpha: p.Alpha, Beta: DefaultGammaBeta})
	y := tmath.Redraw(func() float64 {
		return r.gamma.Sample(g, GammaParams{Alpha: p.Beta, Beta: DefaultGammaBeta})
	}, tmath.IsZero)
	return x / y
}

// BetaPrime is the beta distribution of the second kind, on [0, +Inf).
type BetaPrime struct {
	dist[BetaPrimeParams, float64]
}

// NewBetaPrime returns a beta prime distribution with shape parameters
// alpha and beta.
func NewBetaPrime(alpha, beta float64, opts ...Option) (*BetaPrime, error) {
	d, err := newDist("beta prime", (*Registry).BetaPrime, BetaPrimeParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &BetaPrime{d}, nil
}

// Alpha returns the first shape parameter.
func (d *BetaPrime) Alpha() float64 { return d.p.Alpha }

// Beta returns the second shape parameter.
func (d *BetaPrime) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the first shape parameter.
func (d *BetaPrime) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the second shape parameter.
func (d *BetaPrime) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the first shape parameter, keeping the old value if alpha is invalid.
func (d *BetaPrime) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the second shape parameter, keeping the old value if beta is invalid.
func (d *BetaPrime) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the first shape parameter set to alpha.
func (d *BetaPrime) WithAlpha(alpha float64) (*BetaPrime, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the second shape parameter set to beta.
func (d *BetaPrime) WithBeta(beta float64) (*BetaPrime, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *BetaPrime) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *BetaPrime) Maximum() float64 { return math.Inf(1) }

// Mean is defined for beta > 1.
func (d *BetaPrime) Mean() (float64, error) {
	if d.p.Beta <= 1 {
		return 0, d.undefined("mean")
	}
	return d.p.Alpha / (d.p.Beta - 1), nil
}

// Median returns the median.
func (d *BetaPrime) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance is defined for beta > 2.
func (d *BetaPrime) Variance() (float64, error) {
	a, b := d.p.Alpha, d.p.Beta
	if b <= 2 {
		return 0, d.undefined("variance")
	}
	return a * (a + b - 1) / ((b - 2) * tmath.Square(b-1)), nil
}

// Mode returns the modes.
func (d *BetaPrime) Mode() ([]float64, error) {
	if d.p.Alpha >= 1 {
		return []float64{(d.p.Alpha - 1) / (d.p.Beta + 1)}, nil
	}
	return []float64{0}, nil
}

// NextDouble draws a beta prime distributed value.
func (d *BetaPrime) NextDouble() float64 {
	return d.sample()
}
