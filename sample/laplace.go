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

// Default parameters of the Laplace distribution.
const (
	DefaultLaplaceAlpha = 1.0
	DefaultLaplaceMu    = 0.0
)

// LaplaceParams hold the scale Alpha and the location Mu.
type LaplaceParams struct {
	Alpha float64
	Mu    float64
}

func validLaplace(p LaplaceParams) bool {
	return p.Alpha > 0 && !math.IsNaN(p.Mu) && !math.IsInf(p.Mu, 0)
}

// sampleLaplace inverts the CDF. A draw of zero would map to -Inf and is
// redrawn.
func sampleLaplace(g generator.Generator, p LaplaceParams) float64 {
	u := tmath.Redraw(g.NextDouble, tmath.IsZero) - 0.5
	if u < 0 {
		return p.Mu + p.Alpha*math.Log(1+2*u)
	}
	return p.Mu - p.Alpha*math.Log(1-2*u)
}

// Laplace is the double exponential distribution.
type Laplace struct {
	dist[LaplaceParams, float64]
}

// NewLaplace returns a Laplace distribution with scale alpha and location
// mu.
func NewLaplace(alpha, mu float64, opts ...Option) (*Laplace, error) {
	d, err := newDist("laplace", (*Registry).Laplace, LaplaceParams{Alpha: alpha, Mu: mu}, opts)
	if err != nil {
		return nil, err
	}
	return &Laplace{d}, nil
}

// Alpha returns the scale.
func (d *Laplace) Alpha() float64 { return d.p.Alpha }

// Mu returns the location.
func (d *Laplace) Mu() float64 { return d.p.Mu }

// IsValidAlpha reports whether alpha is a valid value for the scale.
func (d *Laplace) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidMu reports whether mu is a valid value for the location.
func (d *Laplace) IsValidMu(mu float64) bool {
	p := d.p
	p.Mu = mu
	return d.valid(p)
}

// SetAlpha sets the scale, keeping the old value if alpha is invalid.
func (d *Laplace) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetMu sets the location, keeping the old value if mu is invalid.
func (d *Laplace) SetMu(mu float64) error {
	p := d.p
	p.Mu = mu
	return d.set(p)
}

// WithAlpha returns a copy of d with the scale set to alpha.
func (d *Laplace) WithAlpha(alpha float64) (*Laplace, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithMu returns a copy of d with the location set to mu.
func (d *Laplace) WithMu(mu float64) (*Laplace, error) {
	c := *d
	if err := c.SetMu(mu); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Laplace) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *Laplace) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Laplace) Mean() (float64, error) { return d.p.Mu, nil }

// Median returns the median.
func (d *Laplace) Median() (float64, error) { return d.p.Mu, nil }

// Variance returns the variance.
func (d *Laplace) Variance() (float64, error) {
	return 2 * d.p.Alpha * d.p.Alpha, nil
}

// Mode returns the modes.
func (d *Laplace) Mode() ([]float64, error) {
	return []float64{d.p.Mu}, nil
}

// NextDouble draws a Laplace distributed value.
func (d *Laplace) NextDouble() float64 {
	return d.sample()
}
