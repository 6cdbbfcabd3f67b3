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

// DefaultExponentialLambda is the default rate of the exponential
// distribution.
const DefaultExponentialLambda = 1.0

// ExponentialParams hold the rate Lambda.
type ExponentialParams struct {
	Lambda float64
}

func validExponential(p ExponentialParams) bool {
	return p.Lambda > 0
}

// 1-u lies in (0, 1], so the logarithm is always finite.
func sampleExponential(g generator.Generator, p ExponentialParams) float64 {
	return -math.Log(1-g.NextDouble()) / p.Lambda
}

// Exponential is the exponential distribution with rate Lambda.
type Exponential struct {
	dist[ExponentialParams, float64]
}

// NewExponential returns an exponential distribution with rate lambda.
func NewExponential(lambda float64, opts ...Option) (*Exponential, error) {
	d, err := newDist("exponential", (*Registry).Exponential, ExponentialParams{Lambda: lambda}, opts)
	if err != nil {
		return nil, err
	}
	return &Exponential{d}, nil
}

// Lambda returns the rate.
func (d *Exponential) Lambda() float64 { return d.p.Lambda }

// IsValidLambda reports whether lambda is a valid rate.
func (d *Exponential) IsValidLambda(lambda float64) bool {
	return d.valid(ExponentialParams{Lambda: lambda})
}

// SetLambda sets the rate.
func (d *Exponential) SetLambda(lambda float64) error {
	return d.set(ExponentialParams{Lambda: lambda})
}

// WithLambda returns a copy of d with rate lambda.
func (d *Exponential) WithLambda(lambda float64) (*Exponential, error) {
	c := *d
	if err := c.SetLambda(lambda); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Exponential) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Exponential) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Exponential) Mean() (float64, error) {
	return 1 / d.p.Lambda, nil
}

// Median returns the median.
func (d *Exponential) Median() (float64, error) {
	return math.Ln2 / d.p.Lambda, nil
}

// Variance returns the variance.
func (d *Exponential) Variance() (float64, error) {
	return 1 / (d.p.Lambda * d.p.Lambda), nil
}

// Mode returns the modes.
func (d *Exponential) Mode() ([]float64, error) {
	return []float64{0}, nil
}

// NextDouble draws an exponentially distributed value.
func (d *Exponential) NextDouble() float64 {
	return d.sample()
}
