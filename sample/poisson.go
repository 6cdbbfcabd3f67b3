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

// DefaultPoissonLambda is the default rate of the Poisson distribution.
const DefaultPoissonLambda = 1.0

// poissonStep bounds the exponent fed to math.Exp in one step of the
// sampler, so that large rates neither overflow nor underflow.
const poissonStep = 500

// PoissonParams hold the rate Lambda.
type PoissonParams struct {
	Lambda float64
}

func validPoisson(p PoissonParams) bool {
	return p.Lambda > 0
}

// samplePoisson multiplies uniform draws until the product, rescaled by
// exp(lambda) in steps of at most poissonStep, drops to 1 or below.
func samplePoisson(g generator.Generator, p PoissonParams) int {
	lambda := p.Lambda
	k := 0
	prod := 1.0
	for {
		k++
		prod *= tmath.Redraw(g.NextDouble, tmath.IsZero)
		if prod < math.E && lambda > 0 {
			prod *= math.Exp(math.Min(lambda, poissonStep))
			lambda -= poissonStep
		}
		if prod <= 1 {
			break
		}
	}
	return k - 1
}

// Poisson is the Poisson distribution.
type Poisson struct {
	dist[PoissonParams, int]
}

// NewPoisson returns a Poisson distribution with rate lambda.
func NewPoisson(lambda float64, opts ...Option) (*Poisson, error) {
	d, err := newDist("poisson", (*Registry).Poisson, PoissonParams{Lambda: lambda}, opts)
	if err != nil {
		return nil, err
	}
	return &Poisson{d}, nil
}

// Lambda returns the rate.
func (d *Poisson) Lambda() float64 { return d.p.Lambda }

// IsValidLambda reports whether lambda is a valid rate.
func (d *Poisson) IsValidLambda(lambda float64) bool {
	return d.valid(PoissonParams{Lambda: lambda})
}

// SetLambda sets the rate.
func (d *Poisson) SetLambda(lambda float64) error {
	return d.set(PoissonParams{Lambda: lambda})
}

// WithLambda returns a copy of d with rate lambda.
func (d *Poisson) WithLambda(lambda float64) (*Poisson, error) {
	c := *d
	if err := c.SetLambda(lambda); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Poisson) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Poisson) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Poisson) Mean() (float64, error) {
	return d.p.Lambda, nil
}

// Median returns the median.
func (d *Poisson) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Poisson) Variance() (float64, error) {
	return d.p.Lambda, nil
}

// Mode returns lambda-1 and lambda for an integral lambda, floor(lambda)
// otherwise.
func (d *Poisson) Mode() ([]float64, error) {
	l := d.p.Lambda
	if tmath.AreEqual(l, math.Floor(l)) {
		return []float64{l - 1, l}, nil
	}
	return []float64{math.Floor(l)}, nil
}

// Next draws a Poisson distributed count.
func (d *Poisson) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *Poisson) NextDouble() float64 {
	return float64(d.sample())
}
