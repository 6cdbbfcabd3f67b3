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

// DefaultRayleighSigma is the default scale of the Rayleigh distribution.
const DefaultRayleighSigma = 1.0

// RayleighParams hold the scale Sigma.
type RayleighParams struct {
	Sigma float64
}

func validRayleigh(p RayleighParams) bool {
	return p.Sigma > 0
}

// sampleRayleigh returns the norm of two independent N(0, sigma) draws.
func (r *Registry) sampleRayleigh(g generator.Generator, p RayleighParams) float64 {
	n := NormalParams{Mu: 0, Sigma: p.Sigma}
	n1 := tmath.Square(r.normal.Sample(g, n))
	n2 := tmath.Square(r.normal.Sample(g, n))
	return math.Sqrt(n1 + n2)
}

// Rayleigh is the Rayleigh distribution.
type Rayleigh struct {
	dist[RayleighParams, float64]
}

// NewRayleigh returns a Rayleigh distribution with scale sigma.
func NewRayleigh(sigma float64, opts ...Option) (*Rayleigh, error) {
	d, err := newDist("rayleigh", (*Registry).Rayleigh, RayleighParams{Sigma: sigma}, opts)
	if err != nil {
		return nil, err
	}
	return &Rayleigh{d}, nil
}

// Sigma returns the scale.
func (d *Rayleigh) Sigma() float64 { return d.p.Sigma }

// IsValidSigma reports whether sigma is a valid value for the scale.
func (d *Rayleigh) IsValidSigma(sigma float64) bool {
	return d.valid(RayleighParams{Sigma: sigma})
}

// SetSigma sets the scale, keeping the old value if sigma is invalid.
func (d *Rayleigh) SetSigma(sigma float64) error {
	return d.set(RayleighParams{Sigma: sigma})
}

// WithSigma returns a copy of d with the scale set to sigma.
func (d *Rayleigh) WithSigma(sigma float64) (*Rayleigh, error) {
	c := *d
	if err := c.SetSigma(sigma); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Rayleigh) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Rayleigh) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Rayleigh) Mean() (float64, error) {
	return d.p.Sigma * math.Sqrt(math.Pi/2), nil
}

// Median returns the median.
func (d *Rayleigh) Median() (float64, error) {
	return d.p.Sigma * math.Sqrt(math.Log(4)), nil
}

// Variance returns the variance.
func (d *Rayleigh) Variance() (float64, error) {
	return tmath.Square(d.p.Sigma) * (4 - math.Pi) / 2, nil
}

// Mode returns the modes.
func (d *Rayleigh) Mode() ([]float64, error) {
	return []float64{d.p.Sigma}, nil
}

// NextDouble draws a Rayleigh distributed value.
func (d *Rayleigh) NextDouble() float64 {
	return d.sample()
}
