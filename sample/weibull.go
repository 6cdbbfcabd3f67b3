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

// Default parameters of the Weibull distribution.
const (
	DefaultWeibullAlpha  = 1.0
	DefaultWeibullLambda = 1.0
)

// WeibullParams hold the shape Alpha and the scale Lambda.
type WeibullParams struct {
	Alpha  float64
	Lambda float64
}

func validWeibull(p WeibullParams) bool {
	return p.Alpha > 0 && p.Lambda > 0
}

func sampleWeibull(g generator.Generator, p WeibullParams) float64 {
	return p.Lambda * math.Pow(-math.Log(1-g.NextDouble()), 1/p.Alpha)
}

// Weibull is the Weibull distribution.
type Weibull struct {
	dist[WeibullParams, float64]
}

// NewWeibull returns a Weibull distribution with shape alpha and scale
// lambda.
func NewWeibull(alpha, lambda float64, opts ...Option) (*Weibull, error) {
	d, err := newDist("weibull", (*Registry).Weibull, WeibullParams{Alpha: alpha, Lambda: lambda}, opts)
	if err != nil {
		return nil, err
	}
	return &Weibull{d}, nil
}

// Alpha returns the shape.
func (d *Weibull) Alpha() float64 { return d.p.Alpha }

// Lambda returns the scale.
func (d *Weibull) Lambda() float64 { return d.p.Lambda }

// IsValidAlpha reports whether alpha is a valid value for the shape.
func (d *Weibull) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidLambda reports whether lambda is a valid value for the scale.
func (d *Weibull) IsValidLambda(lambda float64) bool {
	p := d.p
	p.Lambda = lambda
	return d.valid(p)
}

// SetAlpha sets the shape, keeping the old value if alpha is invalid.
func (d *Weibull) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetLambda sets the scale, keeping the old value if lambda is invalid.
func (d *Weibull) SetLambda(lambda float64) error {
	p := d.p
	p.Lambda = lambda
	return d.set(p)
}

// WithAlpha returns a copy of d with the shape set to alpha.
func (d *Weibull) WithAlpha(alpha float64) (*Weibull, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithLambda returns a copy of d with the scale set to lambda.
func (d *Weibull) WithLambda(lambda float64) (*Weibull, error) {
	c := *d
	if err := c.SetLambda(lambda); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Weibull) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Weibull) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Weibull) Mean() (float64, error) {
	return d.p.Lambda * math.Gamma(1+1/d.p.Alpha), nil
}

// Median returns the median.
func (d *Weibull) Median() (float64, error) {
	return d.p.Lambda * math.Pow(math.Ln2, 1/d.p.Alpha), nil
}

// Variance returns the variance.
func (d *Weibull) Variance() (float64, error) {
	g1 := math.Gamma(1 + 1/d.p.Alpha)
	g2 := math.Gamma(1 + 2/d.p.Alpha)
	return d.p.Lambda * d.p.Lambda * (g2 - g1*g1), nil
}

// Mode returns the modes.
func (d *Weibull) Mode() ([]float64, error) {
	a := d.p.Alpha
	if a <= 1 {
		return []float64{0}, nil
	}
	return []float64{d.p.Lambda * math.Pow((a-1)/a, 1/a)}, nil
}

// NextDouble draws a Weibull distributed value.
func (d *Weibull) NextDouble() float64 {
	return d.sample()
}
