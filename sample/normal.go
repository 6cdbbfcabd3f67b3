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

// Default parameters of the normal distribution.
const (
	DefaultNormalMu    = 0.0
	DefaultNormalSigma = 1.0
)

// NormalParams hold the mean Mu and the standard deviation Sigma.
type NormalParams struct {
	Mu    float64
	Sigma float64
}

var stdNormal = NormalParams{Mu: DefaultNormalMu, Sigma: DefaultNormalSigma}

func validNormal(p NormalParams) bool {
	return !math.IsNaN(p.Mu) && p.Sigma > 0
}

// sampleNormal uses the Marsaglia polar method. The second value of each
// accepted pair is discarded so that the sampler keeps no state besides
// the generator.
func sampleNormal(g generator.Generator, p NormalParams) float64 {
	var u, v, s float64
	for {
		u = 2*g.NextDouble() - 1
		v = 2*g.NextDouble() - 1
		s = u*u + v*v
		if s < 1 && s > 0 {
			break
		}
	}
	return p.Mu + p.Sigma*u*math.Sqrt(-2*math.Log(s)/s)
}

// Normal is the Gaussian distribution.
type Normal struct {
	dist[NormalParams, float64]
}

// NewNormal returns a normal distribution with mean mu and standard
// deviation sigma.
func NewNormal(mu, sigma float64, opts ...Option) (*Normal, error) {
	d, err := newDist("normal", (*Registry).Normal, NormalParams{Mu: mu, Sigma: sigma}, opts)
	if err != nil {
		return nil, err
	}
	return &Normal{d}, nil
}

// Mu returns the mean.
func (d *Normal) Mu() float64 { return d.p.Mu }

// Sigma returns the standard deviation.
func (d *Normal) Sigma() float64 { return d.p.Sigma }

// IsValidMu reports whether mu would be accepted by SetMu.
func (d *Normal) IsValidMu(mu float64) bool {
	p := d.p
	p.Mu = mu
	return d.valid(p)
}

// IsValidSigma reports whether sigma would be accepted by SetSigma.
func (d *Normal) IsValidSigma(sigma float64) bool {
	p := d.p
	p.Sigma = sigma
	return d.valid(p)
}

// SetMu sets the mean. On error the distribution is left unchanged.
func (d *Normal) SetMu(mu float64) error {
	p := d.p
	p.Mu = mu
	return d.set(p)
}

// SetSigma sets the standard deviation. On error the distribution is left
// unchanged.
func (d *Normal) SetSigma(sigma float64) error {
	p := d.p
	p.Sigma = sigma
	return d.set(p)
}

// WithMu returns a copy of d with mean mu. The copy shares the generator
// of d.
func (d *Normal) WithMu(mu float64) (*Normal, error) {
	c := *d
	if err := c.SetMu(mu); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithSigma returns a copy of d with standard deviation sigma.
func (d *Normal) WithSigma(sigma float64) (*Normal, error) {
	c := *d
	if err := c.SetSigma(sigma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Normal) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *Normal) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Normal) Mean() (float64, error) { return d.p.Mu, nil }

// Median returns the median.
func (d *Normal) Median() (float64, error) { return d.p.Mu, nil }

// Variance returns the variance.
func (d *Normal) Variance() (float64, error) { return d.p.Sigma * d.p.Sigma, nil }

// Mode returns the modes.
func (d *Normal) Mode() ([]float64, error) { return []float64{d.p.Mu}, nil }

// NextDouble draws a normally distributed value.
func (d *Normal) NextDouble() float64 {
	return d.sample()
}
