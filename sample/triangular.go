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
)

// Default parameters of the triangular distribution.
const (
	DefaultTriangularAlpha = 0.0
	DefaultTriangularBeta  = 1.0
	DefaultTriangularGamma = 0.5
)

// TriangularParams hold the lower bound Alpha, the upper bound Beta and the
// mode Gamma.
type TriangularParams struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

func validTriangular(p TriangularParams) bool {
	return p.Alpha < p.Beta && p.Alpha <= p.Gamma && p.Gamma <= p.Beta &&
		!math.IsInf(p.Beta-p.Alpha, 0)
}

func sampleTriangular(g generator.Generator, p TriangularParams) float64 {
	a, b, c := p.Alpha, p.Beta, p.Gamma
	u := g.NextDouble()
	if u < (c-a)/(b-a) {
		return a + math.Sqrt(u*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-c))
}

// Triangular is the triangular distribution on [Alpha, Beta] peaking at
// Gamma.
type Triangular struct {
	dist[TriangularParams, float64]
}

// NewTriangular returns a triangular distribution with bounds alpha, beta
// and mode gamma.
func NewTriangular(alpha, beta, gamma float64, opts ...Option) (*Triangular, error) {
	d, err := newDist("triangular", (*Registry).Triangular,
		TriangularParams{Alpha: alpha, Beta: beta, Gamma: gamma}, opts)
	if err != nil {
		return nil, err
	}
	return &Triangular{d}, nil
}

// Alpha returns the lower bound.
func (d *Triangular) Alpha() float64 { return d.p.Alpha }

// Beta returns the upper bound.
func (d *Triangular) Beta() float64 { return d.p.Beta }

// Gamma returns the mode.
func (d *Triangular) Gamma() float64 { return d.p.Gamma }

// IsValidAlpha reports whether alpha is a valid value for the lower bound.
func (d *Triangular) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the upper bound.
func (d *Triangular) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// IsValidGamma reports whether gamma is a valid value for the mode.
func (d *Triangular) IsValidGamma(gamma float64) bool {
	p := d.p
	p.Gamma = gamma
	return d.valid(p)
}

// SetAlpha sets the lower bound, keeping the old value if alpha is invalid.
func (d *Triangular) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the upper bound, keeping the old value if beta is invalid.
func (d *Triangular) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// SetGamma sets the mode, keeping the old value if gamma is invalid.
func (d *Triangular) SetGamma(gamma float64) error {
	p := d.p
	p.Gamma = gamma
	return d.set(p)
}

// WithAlpha returns a copy of d with the lower bound set to alpha.
func (d *Triangular) WithAlpha(alpha float64) (*Triangular, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the upper bound set to beta.
func (d *Triangular) WithBeta(beta float64) (*Triangular, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithGamma returns a copy of d with the mode set to gamma.
func (d *Triangular) WithGamma(gamma float64) (*Triangular, error) {
	c := *d
	if err := c.SetGamma(gamma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Triangular) Minimum() float64 { return d.p.Alpha }

// Maximum returns the upper end of the support.
func (d *Triangular) Maximum() float64 { return d.p.Beta }

// Mean returns the expected value.
func (d *Triangular) Mean() (float64, error) {
	return (d.p.Alpha + d.p.Beta + d.p.Gamma) / 3, nil
}

// Median returns the median.
func (d *Triangular) Median() (float64, error) {
	a, b, c := d.p.Alpha, d.p.Beta, d.p.Gamma
	if c >= (a+b)/2 {
		return a + math.Sqrt((b-a)*(c-a)/2), nil
	}
	return b - math.Sqrt((b-a)*(b-c)/2), nil
}

// Variance returns the variance.
func (d *Triangular) Variance() (float64, error) {
	a, b, c := d.p.Alpha, d.p.Beta, d.p.Gamma
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18, nil
}

// Mode returns the modes.
func (d *Triangular) Mode() ([]float64, error) {
	return []float64{d.p.Gamma}, nil
}

// NextDouble draws a triangular distributed value.
func (d *Triangular) NextDouble() float64 {
	return d.sample()
}
