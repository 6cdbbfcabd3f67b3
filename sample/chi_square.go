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

// DefaultChiSquareK is the default number of degrees of freedom of the
// chi-square distribution.
const DefaultChiSquareK = 1

// ChiSquareParams hold the degrees of freedom K.
type ChiSquareParams struct {
	K int
}

func validChiSquare(p ChiSquareParams) bool {
	return p.K > 0
}

func (r *Registry) sampleChiSquare(g generator.Generator, p ChiSquareParams) float64 {
	sum := 0.0
	for i := 0; i < p.K; i++ {
		n := r.normal.Sample(g, stdNormal)
		sum += n * n
	}
	return sum
}

// ChiSquare is the distribution of a sum of K squared independent standard
// normal variables.
type ChiSquare struct {
	dist[ChiSquareParams, float64]
}

// NewChiSquare returns a chi-square distribution with k degrees of freedom.
func NewChiSquare(k int, opts ...Option) (*ChiSquare, error) {
	d, err := newDist("chi-square", (*Registry).ChiSquare, ChiSquareParams{K: k}, opts)
	if err != nil {
		return nil, err
	}
	return &ChiSquare{d}, nil
}

// K returns the degrees of freedom.
func (d *ChiSquare) K() int { return d.p.K }

// IsValidK reports whether k is a valid value for the degrees of freedom.
func (d *ChiSquare) IsValidK(k int) bool {
	return d.valid(ChiSquareParams{K: k})
}

// SetK sets the degrees of freedom, keeping the old value if k is invalid.
func (d *ChiSquare) SetK(k int) error {
	return d.set(ChiSquareParams{K: k})
}

// WithK returns a copy of d with the degrees of freedom set to k.
func (d *ChiSquare) WithK(k int) (*ChiSquare, error) {
	c := *d
	if err := c.SetK(k); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *ChiSquare) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *ChiSquare) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *ChiSquare) Mean() (float64, error) {
	return float64(d.p.K), nil
}

// Median returns the Wilson-Hilferty approximation k(1 - 2/(9k))^3.
func (d *ChiSquare) Median() (float64, error) {
	k := float64(d.p.K)
	return k * math.Pow(1-2/(9*k), 3), nil
}

// Variance returns the variance.
func (d *ChiSquare) Variance() (float64, error) {
	return 2 * float64(d.p.K), nil
}

// Mode returns the modes.
func (d *ChiSquare) Mode() ([]float64, error) {
	return []float64{math.Max(float64(d.p.K-2), 0)}, nil
}

// NextDouble draws a chi-square distributed value.
func (d *ChiSquare) NextDouble() float64 {
	return d.sample()
}
