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

// Default parameters of the Fisher-Tippett distribution.
const (
	DefaultFisherTippettAlpha = 1.0
	DefaultFisherTippettMu    = 0.0
)

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.5772156649015329

// FisherTippettParams hold the scale Alpha and the location Mu.
type FisherTippettParams struct {
	Alpha float64
	Mu    float64
}

func validFisherTippett(p FisherTippettParams) bool {
	return p.Alpha > 0 && !math.IsNaN(p.Mu) && !math.IsInf(p.Mu, 0)
}

func sampleFisherTippett(g generator.Generator, p FisherTippettParams) float64 {
	u := tmath.Redraw(g.NextDouble, tmath.IsZero)
	return p.Mu - p.Alpha*math.Log(-math.Log(u))
}

// FisherTippett is the type I extreme value (Gumbel) distribution.
type FisherTippett struct {
	dist[FisherTippettParams, float64]
}

// NewFisherTippett returns a Gumbel distribution with scale alpha and
// location mu.
func NewFisherTippett(alpha, mu float64, opts ...Option) (*FisherTippett, error) {
	d, err := newDist("fisher-tippett", (*Registry).FisherTippett,
		FisherTippettParams{Alpha: alpha, Mu: mu}, opts)
	if err != nil {
		return nil, err
	}
	return &FisherTippett{d}, nil
}

// Alpha returns the scale.
func (d *FisherTippett) Alpha() float64 { return d.p.Alpha }

// Mu returns the location.
func (d *FisherTippett) Mu() float64 { return d.p.Mu }

// IsValidAlpha reports whether alpha is a valid value for the scale.
func (d *FisherTippett) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidMu reports whether mu is a valid value for the location.
func (d *FisherTippett) IsValidMu(mu float64) bool {
	p := d.p
	p.Mu = mu
	return d.valid(p)
}

// SetAlpha sets the scale, keeping the old value if alpha is invalid.
func (d *FisherTippett) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetMu sets the location, keeping the old value if mu is invalid.
func (d *FisherTippett) SetMu(mu float64) error {
	p := d.p
	p.Mu = mu
	return d.set(p)
}

// WithAlpha returns a copy of d with the scale set to alpha.
func (d *FisherTippett) WithAlpha(alpha float64) (*FisherTippett, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithMu returns a copy of d with the location set to mu.
func (d *FisherTippett) WithMu(mu float64) (*FisherTippett, error) {
	c := *d
	if err := c.SetMu(mu); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *FisherTippett) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *FisherTippett) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *FisherTippett) Mean() (float64, error) {
	return d.p.Mu + d.p.Alpha*eulerGamma, nil
}

// Median returns the median.
func (d *FisherTippett) Median() (float64, error) {
	return d.p.Mu - d.p.Alpha*math.Log(math.Ln2), nil
}

// Variance returns the variance.
func (d *FisherTippett) Variance() (float64, error) {
	return math.Pi * math.Pi * d.p.Alpha * d.p.Alpha / 6, nil
}

// Mode returns the modes.
func (d *FisherTippett) Mode() ([]float64, error) {
	return []float64{d.p.Mu}, nil
}

// NextDouble draws a Gumbel distributed value.
func (d *FisherTippett) NextDouble() float64 {
	return d.sample()
}
