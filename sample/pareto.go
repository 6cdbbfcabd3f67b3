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

// Default parameters of the Pareto distribution.
const (
	DefaultParetoAlpha = 1.0
	DefaultParetoBeta  = 1.0
)

// ParetoParams hold the scale Alpha, which is also the minimum of the
// support, and the shape Beta.
type ParetoParams struct {
	Alpha float64
	Beta  float64
}

func validPareto(p ParetoParams) bool {
	return p.Alpha > 0 && p.Beta > 0
}

func samplePareto(g generator.Generator, p ParetoParams) float64 {
	return p.Alpha / math.Pow(1-g.NextDouble(), 1/p.Beta)
}

// Pareto is the Pareto distribution on [Alpha, +Inf).
type Pareto struct {
	dist[ParetoParams, float64]
}

// NewPareto returns a Pareto distribution with scale alpha and shape beta.
func NewPareto(alpha, beta float64, opts ...Option) (*Pareto, error) {
	d, err := newDist("pareto", (*Registry).Pareto, ParetoParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &Pareto{d}, nil
}

// Alpha returns the scale.
func (d *Pareto) Alpha() float64 { return d.p.Alpha }

// Beta returns the shape.
func (d *Pareto) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the scale.
func (d *Pareto) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the shape.
func (d *Pareto) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the scale, keeping the old value if alpha is invalid.
func (d *Pareto) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the shape, keeping the old value if beta is invalid.
func (d *Pareto) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the scale set to alpha.
func (d *Pareto) WithAlpha(alpha float64) (*Pareto, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the shape set to beta.
func (d *Pareto) WithBeta(beta float64) (*Pareto, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Pareto) Minimum() float64 { return d.p.Alpha }

// Maximum returns the upper end of the support.
func (d *Pareto) Maximum() float64 { return math.Inf(1) }

// Mean is defined for beta > 1.
func (d *Pareto) Mean() (float64, error) {
	if d.p.Beta <= 1 {
		return 0, d.undefined("mean")
	}
	return d.p.Beta * d.p.Alpha / (d.p.Beta - 1), nil
}

// Median returns the median.
func (d *Pareto) Median() (float64, error) {
	return d.p.Alpha * math.Pow(2, 1/d.p.Beta), nil
}

// Variance is defined for beta > 2.
func (d *Pareto) Variance() (float64, error) {
	a, b := d.p.Alpha, d.p.Beta
	if b <= 2 {
		return 0, d.undefined("variance")
	}
	return a * a * b / ((b - 1) * (b - 1) * (b - 2)), nil
}

// Mode returns the modes.
func (d *Pareto) Mode() ([]float64, error) {
	return []float64{d.p.Alpha}, nil
}

// NextDouble draws a Pareto distributed value.
func (d *Pareto) NextDouble() float64 {
	return d.sample()
}
