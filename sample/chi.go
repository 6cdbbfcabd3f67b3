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

// DefaultChiK is the default number of degrees of freedom of the chi
// distribution.
const DefaultChiK = 1

// ChiParams hold the degrees of freedom K.
type ChiParams struct {
	K int
}

func validChi(p ChiParams) bool {
	return p.K > 0
}

func (r *Registry) sampleChi(g generator.Generator, p ChiParams) float64 {
	sum := 0.0
	for i := 0; i < p.K; i++ {
		n := r.normal.Sample(g, stdNormal)
		sum += n * n
	}
	return math.Sqrt(sum)
}

// Chi is the distribution of the Euclidean norm of K independent standard
// normal variables.
type Chi struct {
	dist[ChiParams, float64]
}

// NewChi returns a chi distribution with k degrees of freedom.
func NewChi(k int, opts ...Option) (*Chi, error) {
	d, err := newDist("chi", (*Registry).Chi, ChiParams{K: k}, opts)
	if err != nil {
		return nil, err
	}
	return &Chi{d}, nil
}

// K returns the degrees of freedom.
func (d *Chi) K() int { return d.p.K }

// IsValidK reports whether k is a valid value for the degrees of freedom.
func (d *Chi) IsValidK(k int) bool {
	return d.valid(ChiParams{K: k})
}

// SetK sets the degrees of freedom, keeping the old value if k is invalid.
func (d *Chi) SetK(k int) error {
	return d.set(ChiParams{K: k})
}

// WithK returns a copy of d with the degrees of freedom set to k.
func (d *Chi) WithK(k int) (*Chi, error) {
	c := *d
	if err := c.SetK(k); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Chi) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Chi) Maximum() float64 { return math.Inf(1) }

// Mean is sqrt(2) * Gamma((k+1)/2) / Gamma(k/2), evaluated through the
// log-gamma function so that large k does not overflow.
func (d *Chi) Mean() (float64, error) {
	k := float64(d.p.K)
	a, _ := math.Lgamma((k + 1) / 2)
	b, _ := math.Lgamma(k / 2)
	return math.Sqrt2 * math.Exp(a-b), nil
}

// Median returns the median.
func (d *Chi) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Chi) Variance() (float64, error) {
	mean, _ := d.Mean()
	return float64(d.p.K) - mean*mean, nil
}

// Mode returns the modes.
func (d *Chi) Mode() ([]float64, error) {
	return []float64{math.Sqrt(float64(d.p.K - 1))}, nil
}

// NextDouble draws a chi distributed value.
func (d *Chi) NextDouble() float64 {
	return d.sample()
}
