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

// DefaultGeometricAlpha is the default success probability of the
// geometric distribution.
const DefaultGeometricAlpha = 0.5

// GeometricParams hold the success probability Alpha.
type GeometricParams struct {
	Alpha float64
}

func validGeometric(p GeometricParams) bool {
	return p.Alpha > 0 && p.Alpha <= 1
}

// sampleGeometric inverts the CDF of the number of trials up to and
// including the first success. Draws are capped at math.MaxInt32, which
// only tiny success probabilities reach.
func sampleGeometric(g generator.Generator, p GeometricParams) int {
	if p.Alpha == 1 {
		return 1
	}
	q := math.Log(1-g.NextDouble()) / math.Log1p(-p.Alpha)
	if q > math.MaxInt32-1 {
		q = math.MaxInt32 - 1
	}
	return 1 + int(q)
}

// Geometric is the distribution of the number of Bernoulli trials needed
// for the first success. Its support starts at 1.
type Geometric struct {
	dist[GeometricParams, int]
}

// NewGeometric returns a geometric distribution with success probability
// alpha.
func NewGeometric(alpha float64, opts ...Option) (*Geometric, error) {
	d, err := newDist("geometric", (*Registry).Geometric, GeometricParams{Alpha: alpha}, opts)
	if err != nil {
		return nil, err
	}
	return &Geometric{d}, nil
}

// Alpha returns the success probability.
func (d *Geometric) Alpha() float64 { return d.p.Alpha }

// IsValidAlpha reports whether alpha is a valid value for the success probability.
func (d *Geometric) IsValidAlpha(alpha float64) bool {
	return d.valid(GeometricParams{Alpha: alpha})
}

// SetAlpha sets the success probability, keeping the old value if alpha is invalid.
func (d *Geometric) SetAlpha(alpha float64) error {
	return d.set(GeometricParams{Alpha: alpha})
}

// WithAlpha returns a copy of d with the success probability set to alpha.
func (d *Geometric) WithAlpha(alpha float64) (*Geometric, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Geometric) Minimum() float64 { return 1 }

// Maximum returns the upper end of the support.
func (d *Geometric) Maximum() float64 { return math.Inf(1) }

// Mean returns the expected value.
func (d *Geometric) Mean() (float64, error) {
	return 1 / d.p.Alpha, nil
}

// Median returns the median.
func (d *Geometric) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Geometric) Variance() (float64, error) {
	return (1 - d.p.Alpha) / (d.p.Alpha * d.p.Alpha), nil
}

// Mode returns the modes.
func (d *Geometric) Mode() ([]float64, error) {
	return []float64{1}, nil
}

// Next draws a geometric distributed integer.
func (d *Geometric) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *Geometric) NextDouble() float64 {
	return float64(d.sample())
}
