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

// Default degrees of freedom of the Fisher-Snedecor distribution.
const (
	DefaultFisherSnedecorAlpha = 1
	DefaultFisherSnedecorBeta  = 1
)

// FisherSnedecorParams hold the degrees of freedom of the numerator Alpha
// and of the denominator Beta.
type FisherSnedecorParams struct {
	Alpha int
	Beta  int
}

func validFisherSnedecor(p FisherSnedecorParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

// sampleFisherSnedecor returns the ratio of two chi-square variables, each
// divided by its degrees of freedom.
func (r *Registry) sampleFisherSnedecor(g generator.Generator, p FisherSnedecorParams) float64 {
	x := r.chiSquare.Sample(g, ChiSquareParams{K: p.Alpha}) / float64(p.Alpha)
	y := tmath.Redraw(func() float64 {
		return r.chiSquare.Sample(g, ChiSquareParams{K: p.Beta}) / float64(p.Beta)
	}, tmath.IsZero)
	return x / y
}

// FisherSnedecor is the F distribution.
type FisherSnedecor struct {
	dist[FisherSnedecorParams, float64]
}

// NewFisherSnedecor returns an F distribution with alpha and beta degrees
// of freedom.
func NewFisherSnedecor(alpha, beta int, opts ...Option) (*FisherSnedecor, error) {
	d, err := newDist("fisher-snedecor", (*Registry).FisherSnedecor,
		FisherSnedecorParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &FisherSnedecor{d}, nil
}

// Alpha returns the numerator degrees of freedom.
func (d *FisherSnedecor) Alpha() int { return d.p.Alpha }

// Beta returns the denominator degrees of freedom.
func (d *FisherSnedecor) Beta() int { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the numerator degrees of freedom.
func (d *FisherSnedecor) IsValidAlpha(alpha int) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the denominator degrees of freedom.
func (d *FisherSnedecor) IsValidBeta(beta int) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the numerator degrees of freedom, keeping the old value if alpha is invalid.
func (d *FisherSnedecor) SetAlpha(alpha int) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the denominator degrees of freedom, keeping the old value if beta is invalid.
func (d *FisherSnedecor) SetBeta(beta int) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the numerator degrees of freedom set to alpha.
func (d *FisherSnedecor) WithAlpha(alpha int) (*FisherSnedecor, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the denominator degrees of freedom set to beta.
func (d *FisherSnedecor) WithBeta(beta int) (*FisherSnedecor, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *FisherSnedecor) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *FisherSnedecor) Maximum() float64 { return math.Inf(1) }

// Mean is defined for beta > 2.
func (d *FisherSnedecor) Mean() (float64, error) {
	if d.p.Beta <= 2 {
		return 0, d.undefined("mean")
	}
	b := float64(d.p.Beta)
	return b / (b - 2), nil
}

// Median returns the median.
func (d *FisherSnedecor) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance is defined for beta > 4.
func (d *FisherSnedecor) Variance() (float64, error) {
	if d.p.Beta <= 4 {
		return 0, d.undefined("variance")
	}
	a, b := float64(d.p.Alpha), float64(d.p.Beta)
	return 2 * b * b * (a + b - 2) / (a * (b - 2) * (b - 2) * (b - 4)), nil
}

// Mode is defined for alpha > 2.
func (d *FisherSnedecor) Mode() ([]float64, error) {
	if d.p.Alpha <= 2 {
		return nil, d.undefined("mode")
	}
	a, b := float64(d.p.Alpha), float64(d.p.Beta)
	return []float64{(a - 2) / a * b / (b + 2)}, nil
}

// NextDouble draws a F distributed value.
func (d *FisherSnedecor) NextDouble() float64 {
	return d.sample()
}
