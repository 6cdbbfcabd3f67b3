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

// Default parameters of the lognormal distribution.
const (
	DefaultLognormalMu    = 0.0
	DefaultLognormalSigma = 1.0
)

// LognormalParams hold the mean Mu and the standard deviation Sigma of the
// underlying normal distribution.
type LognormalParams struct {
	Mu    float64
	Sigma float64
}

func validLognormal(p LognormalParams) bool {
	return !math.IsNaN(p.Mu) && !math.IsInf(p.Mu, 0) && p.Sigma > 0
}

func (r *Registry) sampleLognormal(g generator.Generator, p LognormalParams) float64 {
	return math.Exp(r.normal.Sample(g, NormalParams{Mu: p.Mu, Sigma: p.Sigma}))
}

// Lognormal is the distribution of exp(X) for a normal X.
type Lognormal struct {
	dist[LognormalParams, float64]
}

// NewLognormal returns a lognormal distribution whose logarithm has mean
// mu and standard deviation sigma.
func NewLognormal(mu, sigma float64, opts ...Option) (*Lognormal, error) {
	d, err := newDist("lognormal", (*Registry).Lognormal, LognormalParams{Mu: mu, Sigma: sigma}, opts)
	if err != nil {
		return nil, err
	}
	return &Lognormal{d}, nil
}

// Mu returns the mean of the logarithm.
func (d *Lognormal) Mu() float64 { return d.p.Mu }

// Sigma returns the standard deviation of the logarithm.
func (d *Lognormal) Sigma() float64 { return d.p.Sigma }

// IsValidMu reports whether mu is a valid value for the mean of the logarithm.
func (d *Lognormal) IsValidMu(mu float64) bool {
	p := d.p
	p.Mu = mu
	return d.valid(p)
}

// IsValidSigma reports whether sigma is a valid value for the standard deviation of the logarithm.
func (d *Lognormal) IsValidSigma(sigma float64) bool {
	p := d.p
	p.Sigma = sigma
	return d.valid(p)
}

// SetMu sets the mean of the logarithm, keeping the old value if mu is invalid.
func (d *Lognormal) SetMu(mu float64) error {
	p := d.p
	p.Mu = mu
	return d.set(p)
}

// SetSigma sets the standard deviation of the logarithm, keeping the old value if sigma is invalid.
func (d *Lognormal) SetSigma(sigma float64) error {
	p := d.p
	p.Sigma = sigma
	return d.set(p)
}

// WithMu returns a copy of d with the mean of the logarithm set to mu.
func (d *Lognormal) WithMu(mu float64) (*Lognormal, error) {
	c := *d
	if err := c.SetMu(mu); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithSigma returns a copy of d with the standard deviation of the logarithm set to sigma.
func (d *Lognormal) WithSigma(sigma float64) (*Lognormal, error) {
	c := *d
	if err := c.SetSigma(sigma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Lognormal) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Lognormal) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Lognormal) Mean() (float64, error) {
	return math.Exp(d.p.Mu + d.p.Sigma*d.p.Sigma/2), nil
}

// Median returns the median.
func (d *Lognormal) Median() (float64, error) {
	return math.Exp(d.p.Mu), nil
}

// Variance returns the variance.
func (d *Lognormal) Variance() (float64, error) {
	s2 := d.p.Sigma * d.p.Sigma
	return math.Expm1(s2) * math.Exp(2*d.p.Mu+s2), nil
}

// Mode returns the modes.
func (d *Lognormal) Mode() ([]float64, error) {
	return []float64{math.Exp(d.p.Mu - d.p.Sigma*d.p.Sigma)}, nil
}

// NextDouble draws a lognormal distributed value.
func (d *Lognormal) NextDouble() float64 {
	return d.sample()
}
