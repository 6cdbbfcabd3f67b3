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

// Default parameters of the Cauchy distribution.
const (
	DefaultCauchyAlpha = 1.0
	DefaultCauchyGamma = 1.0
)

// CauchyParams hold the location Alpha and the scale Gamma.
type CauchyParams struct {
	Alpha float64
	Gamma float64
}

func validCauchy(p CauchyParams) bool {
	return !math.IsNaN(p.Alpha) && !math.IsInf(p.Alpha, 0) && p.Gamma > 0
}

func sampleCauchy(g generator.Generator, p CauchyParams) float64 {
	return p.Alpha + p.Gamma*math.Tan(math.Pi*(g.NextDouble()-0.5))
}

// Cauchy is the Cauchy (Lorentz) distribution. Its mean and variance are
// undefined for every parameter choice.
type Cauchy struct {
	dist[CauchyParams, float64]
}

// NewCauchy returns a Cauchy distribution with location alpha and scale
// gamma.
func NewCauchy(alpha, gamma float64, opts ...Option) (*Cauchy, error) {
	d, err := newDist("cauchy", (*Registry).Cauchy, CauchyParams{Alpha: alpha, Gamma: gamma}, opts)
	if err != nil {
		return nil, err
	}
	return &Cauchy{d}, nil
}

// Alpha returns the location.
func (d *Cauchy) Alpha() float64 { return d.p.Alpha }

// Gamma returns the scale.
func (d *Cauchy) Gamma() float64 { return d.p.Gamma }

// IsValidAlpha reports whether alpha is a valid value for the location.
func (d *Cauchy) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidGamma reports whether gamma is a valid value for the scale.
func (d *Cauchy) IsValidGamma(gamma float64) bool {
	p := d.p
	p.Gamma = gamma
	return d.valid(p)
}

// SetAlpha sets the location, keeping the old value if alpha is invalid.
func (d *Cauchy) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetGamma sets the scale, keeping the old value if gamma is invalid.
func (d *Cauchy) SetGamma(gamma float64) error {
	p := d.p
	p.Gamma = gamma
	return d.set(p)
}

// WithAlpha returns a copy of d with the location set to alpha.
func (d *Cauchy) WithAlpha(alpha float64) (*Cauchy, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithGamma returns a copy of d with the scale set to gamma.
func (d *Cauchy) WithGamma(gamma float64) (*Cauchy, error) {
	c := *d
	if err := c.SetGamma(gamma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Cauchy) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *Cauchy) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Cauchy) Mean() (float64, error) {
	return 0, d.undefined("mean")
}

// Median returns the median.
func (d *Cauchy) Median() (float64, error) {
	return d.p.Alpha, nil
}

// Variance returns the variance.
func (d *Cauchy) Variance() (float64, error) {
	return 0, d.undefined("variance")
}

// Mode returns the modes.
func (d *Cauchy) Mode() ([]float64, error) {
	return []float64{d.p.Alpha}, nil
}

// NextDouble draws a Cauchy distributed value.
func (d *Cauchy) NextDouble() float64 {
	return d.sample()
}
