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

// Default parameters of the logistic distribution.
const (
	DefaultLogisticMu    = 1.0
	DefaultLogisticSigma = 1.0
)

// LogisticParams hold the location Mu and the scale Sigma.
type LogisticParams struct {
	Mu    float64
	Sigma float64
}

func validLogistic(p LogisticParams) bool {
	return !math.IsNaN(p.Mu) && p.Sigma > 0
}

// sampleLogistic redraws u while u(1-u) is numerically zero, so that the
// logit below stays finite.
func sampleLogistic(g generator.Generator, p LogisticParams) float64 {
	u := tmath.Redraw(g.NextDouble, func(u float64) bool {
		return tmath.IsZero(u * (1 - u))
	})
	return p.Mu + p.Sigma*math.Log(u/(1-u))
}

// Logistic is the logistic distribution.
type Logistic struct {
	dist[LogisticParams, float64]
}

// NewLogistic returns a logistic distribution with location mu and scale
// sigma.
func NewLogistic(mu, sigma float64, opts ...Option) (*Logistic, error) {
	d, err := newDist("logistic", (*Registry).Logistic, LogisticParams{Mu: mu, Sigma: sigma}, opts)
	if err != nil {
		return nil, err
	}
	return &Logistic{d}, nil
}

// Mu returns the location.
func (d *Logistic) Mu() float64 { return d.p.Mu }

// Sigma returns the scale.
func (d *Logistic) Sigma() float64 { return d.p.Sigma }

// IsValidMu reports whether mu is a valid value for the location.
func (d *Logistic) IsValidMu(mu float64) bool {
	p := d.p
	p.Mu = mu
	return d.valid(p)
}

// IsValidSigma reports whether sigma is a valid value for the scale.
func (d *Logistic) IsValidSigma(sigma float64) bool {
	p := d.p
	p.Sigma = sigma
	return d.valid(p)
}

// SetMu sets the location, keeping the old value if mu is invalid.
func (d *Logistic) SetMu(mu float64) error {
	p := d.p
	p.Mu = mu
	return d.set(p)
}

// SetSigma sets the scale, keeping the old value if sigma is invalid.
func (d *Logistic) SetSigma(sigma float64) error {
	p := d.p
	p.Sigma = sigma
	return d.set(p)
}

// WithMu returns a copy of d with the location set to mu.
func (d *Logistic) WithMu(mu float64) (*Logistic, error) {
	c := *d
	if err := c.SetMu(mu); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithSigma returns a copy of d with the scale set to sigma.
func (d *Logistic) WithSigma(sigma float64) (*Logistic, error) {
	c := *d
	if err := c.SetSigma(sigma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Logistic) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *Logistic) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Logistic) Mean() (float64, error) { return d.p.Mu, nil }

// Median returns the median.
func (d *Logistic) Median() (float64, error) { return d.p.Mu, nil }

// Variance returns the variance.
func (d *Logistic) Variance() (float64, error) {
	return tmath.Square(d.p.Sigma) * tmath.Square(math.Pi) / 3, nil
}

// Mode returns the modes.
func (d *Logistic) Mode() ([]float64, error) {
	return []float64{d.p.Mu}, nil
}

// NextDouble draws a logistic distributed value.
func (d *Logistic) NextDouble() float64 {
	return d.sample()
}
