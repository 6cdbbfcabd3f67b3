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

// Default parameters of the power distribution.
const (
	DefaultPowerAlpha = 1.0
	DefaultPowerBeta  = 1.0
)

// PowerParams hold the shape Alpha and the scale Beta. The density is
// alpha * x^(alpha-1) / beta^alpha on [0, Beta].
type PowerParams struct {
	Alpha float64
	Beta  float64
}

func validPower(p PowerParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

func samplePower(g generator.Generator, p PowerParams) float64 {
	return p.Beta * math.Pow(g.NextDouble(), 1/p.Alpha)
}

// Power is the power function distribution.
type Power struct {
	dist[PowerParams, float64]
}

// NewPower returns a power function distribution with shape alpha and
// scale beta.
func NewPower(alpha, beta float64, opts ...Option) (*Power, error) {
	d, err := newDist("power", (*Registry).Power, PowerParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &Power{d}, nil
}

// Alpha returns the shape.
func (d *Power) Alpha() float64 { return d.p.Alpha }

// Beta returns the upper bound.
func (d *Power) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the shape.
func (d *Power) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the upper bound.
func (d *Power) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the shape, keeping the old value if alpha is invalid.
func (d *Power) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the upper bound, keeping the old value if beta is invalid.
func (d *Power) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the shape set to alpha.
func (d *Power) WithAlpha(alpha float64) (*Power, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the upper bound set to beta.
func (d *Power) WithBeta(beta float64) (*Power, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Power) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Power) Maximum() float64 { return d.p.Beta }

// Mean returns the expected value.
func (d *Power) Mean() (float64, error) {
	return d.p.Alpha * d.p.Beta / (d.p.Alpha + 1), nil
}

// Median returns the median.
func (d *Power) Median() (float64, error) {
	return d.p.Beta * math.Pow(2, -1/d.p.Alpha), nil
}

// Variance returns the variance.
func (d *Power) Variance() (float64, error) {
	a, b := d.p.Alpha, d.p.Beta
	return a * b * b / ((a + 2) * (a + 1) * (a + 1)), nil
}

// Mode is undefined for alpha = 1, where the density is flat.
func (d *Power) Mode() ([]float64, error) {
	switch {
	case tmath.AreEqual(d.p.Alpha, 1):
		return nil, d.undefined("mode")
	case d.p.Alpha > 1:
		return []float64{d.p.Beta}, nil
	}
	return []float64{0}, nil
}

// NextDouble draws a power distributed value.
func (d *Power) NextDouble() float64 {
	return d.sample()
}
