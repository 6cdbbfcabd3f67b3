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

// Default parameters of the Erlang distribution.
const (
	DefaultErlangK      = 1
	DefaultErlangLambda = 1.0
)

// ErlangParams hold the shape K and the rate Lambda.
type ErlangParams struct {
	K      int
	Lambda float64
}

func validErlang(p ErlangParams) bool {
	return p.K > 0 && p.Lambda > 0
}

// sampleErlang sums the logarithms of K uniform draws instead of taking
// the logarithm of their product, which underflows for large K.
func sampleErlang(g generator.Generator, p ErlangParams) float64 {
	sum := 0.0
	for i := 0; i < p.K; i++ {
		sum += math.Log(tmath.Redraw(g.NextDouble, tmath.IsZero))
	}
	return -sum / p.Lambda
}

// Erlang is the distribution of the sum of K exponential variables with
// rate Lambda.
type Erlang struct {
	dist[ErlangParams, float64]
}

// NewErlang returns an Erlang distribution with shape k and rate lambda.
func NewErlang(k int, lambda float64, opts ...Option) (*Erlang, error) {
	d, err := newDist("erlang", (*Registry).Erlang, ErlangParams{K: k, Lambda: lambda}, opts)
	if err != nil {
		return nil, err
	}
	return &Erlang{d}, nil
}

// K returns the shape.
func (d *Erlang) K() int { return d.p.K }

// Lambda returns the rate.
func (d *Erlang) Lambda() float64 { return d.p.Lambda }

// IsValidK reports whether k is a valid value for the shape.
func (d *Erlang) IsValidK(k int) bool {
	p := d.p
	p.K = k
	return d.valid(p)
}

// IsValidLambda reports whether lambda is a valid value for the rate.
func (d *Erlang) IsValidLambda(lambda float64) bool {
	p := d.p
	p.Lambda = lambda
	return d.valid(p)
}

// SetK sets the shape, keeping the old value if k is invalid.
func (d *Erlang) SetK(k int) error {
	p := d.p
	p.K = k
	return d.set(p)
}

// SetLambda sets the rate, keeping the old value if lambda is invalid.
func (d *Erlang) SetLambda(lambda float64) error {
	p := d.p
	p.Lambda = lambda
	return d.set(p)
}

// WithK returns a copy of d with the shape set to k.
func (d *Erlang) WithK(k int) (*Erlang, error) {
	c := *d
	if err := c.SetK(k); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithLambda returns a copy of d with the rate set to lambda.
func (d *Erlang) WithLambda(lambda float64) (*Erlang, error) {
	c := *d
	if err := c.SetLambda(lambda); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Erlang) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Erlang) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Erlang) Mean() (float64, error) {
	return float64(d.p.K) / d.p.Lambda, nil
}

// Median returns the median.
func (d *Erlang) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Erlang) Variance() (float64, error) {
	return float64(d.p.K) / (d.p.Lambda * d.p.Lambda), nil
}

// Mode returns the modes.
func (d *Erlang) Mode() ([]float64, error) {
	return []float64{float64(d.p.K-1) / d.p.Lambda}, nil
}

// NextDouble draws a Erlang distributed value.
func (d *Erlang) NextDouble() float64 {
	return d.sample()
}
