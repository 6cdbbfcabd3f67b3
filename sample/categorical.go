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
	"sort"

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/internal/tmath"
	"gonum.org/v1/gonum/floats"
)

// DefaultCategoricalValueCount is the number of equally weighted values of
// the default categorical distribution.
const DefaultCategoricalValueCount = 2

// CategoricalParams hold the non-negative weight of each value 0..n-1.
// Weights need not sum to one.
type CategoricalParams struct {
	Weights []float64

	cum []float64
}

// newCategoricalParams copies weights and, when they are valid, precomputes
// the normalized cumulative table.
func newCategoricalParams(weights []float64) CategoricalParams {
	w := make([]float64, len(weights))
	copy(w, weights)
	p := CategoricalParams{Weights: w}
	if validCategorical(p) {
		p.cum = cumulative(w)
	}
	return p
}

// cumulative returns the normalized running sum of w. Entries from the
// last positive weight onwards are exactly 1 so that trailing zero weights
// can never be drawn.
func cumulative(w []float64) []float64 {
	cum := make([]float64, len(w))
	floats.CumSum(cum, w)
	floats.Scale(1/cum[len(cum)-1], cum)
	last := len(w) - 1
	for last > 0 && w[last] == 0 {
		last--
	}
	for i := last; i < len(cum); i++ {
		cum[i] = 1
	}
	return cum
}

func validCategorical(p CategoricalParams) bool {
	if len(p.Weights) == 0 {
		return false
	}
	for _, w := range p.Weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return false
		}
	}
	return floats.Sum(p.Weights) > 0
}

func sampleCategorical(g generator.Generator, p CategoricalParams) int {
	cum := p.cum
	if cum == nil {
		cum = cumulative(p.Weights)
	}
	u := g.NextDouble()
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if i == len(cum) {
		i--
	}
	return i
}

// Categorical draws the index of one of its weights, with probability
// proportional to the weight.
type Categorical struct {
	dist[CategoricalParams, int]
}

// NewCategorical returns a categorical distribution over the indices of
// weights. The slice is copied.
func NewCategorical(weights []float64, opts ...Option) (*Categorical, error) {
	d, err := newDist("categorical", (*Registry).Categorical, newCategoricalParams(weights), opts)
	if err != nil {
		return nil, err
	}
	return &Categorical{d}, nil
}

// NewCategoricalCount returns a categorical distribution over 0..n-1 with
// equal weights.
func NewCategoricalCount(n int, opts ...Option) (*Categorical, error) {
	if n < 0 {
		n = 0
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	return NewCategorical(weights, opts...)
}

// Weights returns a copy of the weights.
func (d *Categorical) Weights() []float64 {
	w := make([]float64, len(d.p.Weights))
	copy(w, d.p.Weights)
	return w
}

// IsValidWeights reports whether weights is a valid value for the category weights.
func (d *Categorical) IsValidWeights(weights []float64) bool {
	return d.valid(CategoricalParams{Weights: weights})
}

// SetWeights replaces the weights. The slice is copied.
func (d *Categorical) SetWeights(weights []float64) error {
	return d.set(newCategoricalParams(weights))
}

// WithWeights returns a copy of d with the category weights set to weights.
func (d *Categorical) WithWeights(weights []float64) (*Categorical, error) {
	c := *d
	if err := c.SetWeights(weights); err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *Categorical) probabilities() []float64 {
	p := make([]float64, len(d.p.Weights))
	floats.ScaleTo(p, 1/floats.Sum(d.p.Weights), d.p.Weights)
	return p
}

// Minimum returns the lower end of the support.
func (d *Categorical) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Categorical) Maximum() float64 { return float64(len(d.p.Weights) - 1) }

// Mean returns the expected value.
func (d *Categorical) Mean() (float64, error) {
	mean := 0.0
	for i, p := range d.probabilities() {
		mean += float64(i) * p
	}
	return mean, nil
}

// Median returns the smallest index whose cumulative probability reaches
// one half. When it hits one half exactly the median is halfway to the
// next index with a positive weight.
func (d *Categorical) Median() (float64, error) {
	cum := cumulative(d.p.Weights)
	i := sort.Search(len(cum), func(i int) bool { return cum[i] >= 0.5-tmath.Tolerance })
	if !tmath.AreEqual(cum[i], 0.5) {
		return float64(i), nil
	}
	j := i + 1
	for j < len(d.p.Weights) && d.p.Weights[j] == 0 {
		j++
	}
	if j == len(d.p.Weights) {
		return float64(i), nil
	}
	return float64(i+j) / 2, nil
}

// Variance returns the variance.
func (d *Categorical) Variance() (float64, error) {
	mean, _ := d.Mean()
	v := 0.0
	for i, p := range d.probabilities() {
		v += tmath.Square(float64(i)-mean) * p
	}
	return v, nil
}

// Mode returns every index carrying the largest weight.
func (d *Categorical) Mode() ([]float64, error) {
	top := floats.Max(d.p.Weights)
	var modes []float64
	for i, w := range d.p.Weights {
		if tmath.AreEqual(w, top) {
			modes = append(modes, float64(i))
		}
	}
	return modes, nil
}

// Next draws a categorical distributed integer.
func (d *Categorical) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *Categorical) NextDouble() float64 {
	return float64(d.sample())
}
