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

// Default parameters of the gamma distribution.
const (
	DefaultGammaAlpha = 1.0
	DefaultGammaBeta  = 1.0
)

// GammaParams hold the shape Alpha and the scale Beta.
type GammaParams struct {
	Alpha float64
	Beta  float64
}

func validGamma(p GammaParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

// sampleGamma implements the Marsaglia and Tsang squeeze method. Shapes
// below one are sampled at Alpha+1 and scaled by u^(1/Alpha).
func (r *Registry) sampleGamma(g generator.Generator, p GammaParams) float64 {
	alpha := p.Alpha
	boost := 1.0
	if alpha < 1 {
		u := tmath.Redraw(g.NextDouble, tmath.IsZero)
		boost = math.Pow(u, 1/alpha)
		alpha++
	}

	d := alpha - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for v <= 0 {
			x = r.normal.Sample(g, stdNormal)
			v = 1 + c*x
		}
		v = v * v * v
		u := g.NextDouble()
		x2 := x * x
		if u < 1-0.0331*x2*x2 || math.Log(u) < 0.5*x2+d*(1-v+math.Log(v)) {
			return d * v * boost * p.Beta
		}
	}
}

// Gamma is the gamma distribution with a shape and a scale parameter.
type Gamma struct {
	dist[GammaParams, float64]
}

// NewGamma returns a gamma distribution with shape alpha and scale beta.
func NewGamma(alpha, beta float64, opts ...Option) (*Gamma, error) {
	d, err := newDist("gamma", (*Registry).Gamma, GammaParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &Gamma{d}, nil
}

// Alpha returns the shape.
func (d *Gamma) Alpha() float64 { return d.p.Alpha }

// Beta returns the scale.
func (d *Gamma) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the shape.
func (d *Gamma) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the scale.
func (d *Gamma) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the shape, keeping the old value if alpha is invalid.
func (d *Gamma) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the scale, keeping the old value if beta is invalid.
func (d *Gamma) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the shape set to alpha.
func (d *Gamma) WithAlpha(alpha float64) (*Gamma, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the scale set to beta.
func (d *Gamma) WithBeta(beta float64) (*Gamma, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Gamma) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Gamma) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Gamma) Mean() (float64, error) {
	return d.p.Alpha * d.p.Beta, nil
}

// Median has no closed form.
func (d *Gamma) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Gamma) Variance() (float64, error) {
	return d.p.Alpha * d.p.Beta * d.p.Beta, nil
}

// Mode is defined for Alpha >= 1.
func (d *Gamma) Mode() ([]float64, error) {
	if d.p.Alpha < 1 {
		return nil, d.undefined("mode")
	}
	return []float64{(d.p.Alpha - 1) * d.p.Beta}, nil
}

// NextDouble draws a gamma distributed value.
func (d *Gamma) NextDouble() float64 {
	return d.sample()
}
