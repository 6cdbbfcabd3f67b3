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

// Default bounds of the discrete uniform distribution.
const (
	DefaultDiscreteUniformAlpha = 0
	DefaultDiscreteUniformBeta  = 1
)

// DiscreteUniformParams hold the inclusive bounds Alpha and Beta.
type DiscreteUniformParams struct {
	Alpha int
	Beta  int
}

// validDiscreteUniform keeps both bounds in the 32-bit range, where the
// width Beta-Alpha+1 cannot overflow.
func validDiscreteUniform(p DiscreteUniformParams) bool {
	return p.Alpha <= p.Beta && p.Beta < math.MaxInt32 && p.Alpha >= math.MinInt32
}

func sampleDiscreteUniform(g generator.Generator, p DiscreteUniformParams) int {
	return p.Alpha + int(g.NextDouble()*float64(p.Beta-p.Alpha+1))
}

// DiscreteUniform is the uniform distribution over the integers in
// [Alpha, Beta].
type DiscreteUniform struct {
	dist[DiscreteUniformParams, int]
}

// NewDiscreteUniform returns a uniform distribution over [alpha, beta].
func NewDiscreteUniform(alpha, beta int, opts ...Option) (*DiscreteUniform, error) {
	d, err := newDist("discrete uniform", (*Registry).DiscreteUniform,
		DiscreteUniformParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &DiscreteUniform{d}, nil
}

// Alpha returns the inclusive lower bound.
func (d *DiscreteUniform) Alpha() int { return d.p.Alpha }

// Beta returns the inclusive upper bound.
func (d *DiscreteUniform) Beta() int { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the inclusive lower bound.
func (d *DiscreteUniform) IsValidAlpha(alpha int) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the inclusive upper bound.
func (d *DiscreteUniform) IsValidBeta(beta int) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the inclusive lower bound, keeping the old value if alpha is invalid.
func (d *DiscreteUniform) SetAlpha(alpha int) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the inclusive upper bound, keeping the old value if beta is invalid.
func (d *DiscreteUniform) SetBeta(beta int) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the inclusive lower bound set to alpha.
func (d *DiscreteUniform) WithAlpha(alpha int) (*DiscreteUniform, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the inclusive upper bound set to beta.
func (d *DiscreteUniform) WithBeta(beta int) (*DiscreteUniform, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *DiscreteUniform) Minimum() float64 { return float64(d.p.Alpha) }

// Maximum returns the upper end of the support.
func (d *DiscreteUniform) Maximum() float64 { return float64(d.p.Beta) }

// Mean returns the expected value.
func (d *DiscreteUniform) Mean() (float64, error) {
	return (float64(d.p.Alpha) + float64(d.p.Beta)) / 2, nil
}

// Median returns the median.
func (d *DiscreteUniform) Median() (float64, error) {
	return (float64(d.p.Alpha) + float64(d.p.Beta)) / 2, nil
}

// Variance returns the variance.
func (d *DiscreteUniform) Variance() (float64, error) {
	n := float64(d.p.Beta) - float64(d.p.Alpha) + 1
	return (n*n - 1) / 12, nil
}

// Mode returns the modes.
func (d *DiscreteUniform) Mode() ([]float64, error) {
	return nil, d.undefined("mode")
}

// Next draws a uniform distributed integer.
func (d *DiscreteUniform) Next() int {
	return d.sample()
}

// NextDouble returns Next as a float64.
func (d *DiscreteUniform) NextDouble() float64 {
	return float64(d.sample())
}
