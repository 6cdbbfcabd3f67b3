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

// Default parameters of the binomial distribution.
const (
	DefaultBinomialAlpha = 0.5
	DefaultBinomialBeta  = 1
)

// BinomialParams hold the success probability Alpha of each trial and the
// number of trials Beta.
type BinomialParams struct {
	Alpha float64
	Beta  int
}

func validBinomial(p BinomialParams) bool {
	return p.Alpha >= 0 && p.Alpha <= 1 && p.Beta >= 0
}

func sampleBinomial(g generator.Generator, p BinomialParams) int {
	k := 0
	for i := 0; i < p.Beta; i++ {
		if g.NextDouble() < p.Alpha {
			k++
		}
	}
	return k
}

// Binomial counts the successes in Beta independent trials.
type Binomial struct {
	dist[BinomialParams, int]
}

// NewBinomial returns a binomial distribution of beta trials with success
// probability alpha.
func NewBinomial(alpha float64, beta int, opts ...Option) (*Binomial, error) {
	d, err := newDist("binomial", (*Registry).Binomial, BinomialParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &Binomial{d}, nil
}

// Alpha returns the success probability of a trial.
func (d *Binomial) Alpha() float64 { return d.p.Alpha }

// Beta returns the number of trials.
func (d *Binomial) Beta() int { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the success probability.
func (d *Binomial) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the number of trials.
func (d *Binomial) IsValidBeta(beta int) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the success probability, keeping the old value if alpha is invalid.
func (d *Binomial) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the number of trials, keeping the old value if beta is invalid.
func (d *Binomial) SetBeta(beta int) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the success probability set to alpha.
func (d *Binomial) WithAlpha(alpha float64) (*Binomial, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the number of trials set to beta.
func (d *Binomial) WithBeta(beta int) (*Binomial, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *Binomial) Minimum() float64 { return 0 }

// Maximum returns the upper end of the support.
func (d *Binomial) Maximum() float64 { return float64(d.p.Beta) }

// Mean returns the expected value.
func (d *Binomial) Mean() (float64, error) {
	return d.p.Alpha * float64(d.p.Beta), nil
}

// Median returns the median.
func (d *Binomial) Median() (float64, error) {
	return 0, d.undefined("median")
}

// Variance returns the variance.
func (d *Binomial) Variance() (float64, error) {
	return d.p.Alpha * (1 - d.p.Alpha) * float64(d.p.Beta), nil
}

// Mode returns floor((n+1)p), or the two modes (n+1)p-1 and (n+1)p when
// (n+1)p is an integer inside [1, n].
func (d *Binomial) Mode() ([]float64, error) {
	n := float64(d.p.Beta)
	m := (n + 1) * d.p.Alpha
	r := math.Round(m)
	if tmath.AreEqual(m, r) && r >= 1 && r <= n {
		return []float64{r - 1, r}, nil
	}
	return []float64{math.Min(math.Floor(m), n)}, nil
}

// Next draws a binomial distributed integer.
func (d *Binomial) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *Binomial) NextDouble() float64 {
	return float64(d.sample())
}
