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
	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/internal/tmath"
)

// DefaultBernoulliAlpha is the default success probability of the
// Bernoulli distribution.
const DefaultBernoulliAlpha = 0.5

// BernoulliParams hold the success probability Alpha.
type BernoulliParams struct {
	Alpha float64
}

func validBernoulli(p BernoulliParams) bool {
	return p.Alpha >= 0 && p.Alpha <= 1
}

func sampleBernoulli(g generator.Generator, p BernoulliParams) int {
	if g.NextDouble() < p.Alpha {
		return 1
	}
	return 0
}

// Bernoulli yields 1 with probability Alpha and 0 otherwise.
type Bernoulli struct {
	dist[BernoulliParams, int]
}

// NewBernoulli returns a Bernoulli distribution with success probability
// alpha.
func NewBernoulli(alpha float64, opts ...Option) (*Bernoulli, error) {
	d, err := newDist("bernoulli", (*Registry).Bernoulli, BernoulliParams{Alpha: alpha}, opts)
	if err != nil {
		return nil, err
	}
	return &Bernoulli{d}, nil
}

// Alpha returns the success probability.
func (d *Bernoulli) Alpha() float64 { return d.p.Alpha }

// IsValidAlpha reports whether alpha is a valid value for the success probability.
func (d *Bernoulli) IsValidAlpha(alpha float64) bool {
	return d.valid(BernoulliParams{Alpha: alpha})
}

// SetAlpha sets the success probability, keeping the old value if alpha is invalid.
func (d *Bernoulli) SetAlpha(alpha float64) error {
	return d.set(BernoulliParams{Alpha: alpha})
}

// WithAlpha returns a copy of d with the success probability set to alpha.
func (d *Bernoulli) WithAlpha(alpha float64) (*Bernoulli, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Bernoulli) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Bernoulli) Maximum() float64 { return 1 }

// Mean returns the expected value.
func (d *Bernoulli) Mean() (float64, error) {
	return d.p.Alpha, nil
}

// Median returns the median.
func (d *Bernoulli) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Bernoulli) Variance() (float64, error) {
	return d.p.Alpha * (1 - d.p.Alpha), nil
}

// Mode returns the modes.
func (d *Bernoulli) Mode() ([]float64, error) {
	switch {
	case tmath.AreEqual(d.p.Alpha, 0.5):
		return []float64{0, 1}, nil
	case d.p.Alpha > 0.5:
		return []float64{1}, nil
	}
	return []float64{0}, nil
}

// Next draws 0 or 1.
func (d *Bernoulli) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *Bernoulli) NextDouble() float64 {
	return float64(d.sample())
}
