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

// Default bounds of the continuous uniform distribution.
const (
	DefaultContinuousUniformAlpha = 0.0
	DefaultContinuousUniformBeta  = 1.0
)

// ContinuousUniformParams hold the lower bound Alpha and the upper bound
// Beta.
type ContinuousUniformParams struct {
	Alpha float64
	Beta  float64
}

func validContinuousUniform(p ContinuousUniformParams) bool {
	return p.Alpha <= p.Beta && !math.IsInf(p.Beta-p.Alpha, 0)
}

func sampleContinuousUniform(g generator.Generator, p ContinuousUniformParams) float64 {
	return p.Alpha + g.NextDouble()*(p.Beta-p.Alpha)
}

// ContinuousUniform is the uniform distribution on [Alpha, Beta).
type ContinuousUniform struct {
	dist[ContinuousUniformParams, float64]
}

// NewContinuousUniform returns a uniform distribution on [alpha, beta).
func NewContinuousUniform(alpha, beta float64, opts ...Option) (*ContinuousUniform, error) {
	d, err := newDist("continuous uniform", (*Registry).ContinuousUniform,
		ContinuousUniformParams{Alpha: alpha, Beta: beta}, opts)
	if err != nil {
		return nil, err
	}
	return &ContinuousUniform{d}, nil
}

// Alpha returns the lower bound.
func (d *ContinuousUniform) Alpha() float64 { return d.p.Alpha }

// Beta returns the upper bound.
func (d *ContinuousUniform) Beta() float64 { return d.p.Beta }

// IsValidAlpha reports whether alpha is a valid value for the lower bound.
func (d *ContinuousUniform) IsValidAlpha(alpha float64) bool {
	p := d.p
	p.Alpha = alpha
	return d.valid(p)
}

// IsValidBeta reports whether beta is a valid value for the upper bound.
func (d *ContinuousUniform) IsValidBeta(beta float64) bool {
	p := d.p
	p.Beta = beta
	return d.valid(p)
}

// SetAlpha sets the lower bound, keeping the old value if alpha is invalid.
func (d *ContinuousUniform) SetAlpha(alpha float64) error {
	p := d.p
	p.Alpha = alpha
	return d.set(p)
}

// SetBeta sets the upper bound, keeping the old value if beta is invalid.
func (d *ContinuousUniform) SetBeta(beta float64) error {
	p := d.p
	p.Beta = beta
	return d.set(p)
}

// WithAlpha returns a copy of d with the lower bound set to alpha.
func (d *ContinuousUniform) WithAlpha(alpha float64) (*ContinuousUniform, error) {
	c := *d
	if err := c.SetAlpha(alpha); err != nil {
		return nil, err
	}
	return &c, nil
}

// WithBeta returns a copy of d with the upper bound set to beta.
func (d *ContinuousUniform) WithBeta(beta float64) (*ContinuousUniform, error) {
	c := *d
	if err := c.SetBeta(beta); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *ContinuousUniform) Minimum() float64 { return d.p.Alpha }

// Maximum returns the upper end of the support.
func (d *ContinuousUniform) Maximum() float64 { return d.p.Beta }

// Mean returns the expected value.
func (d *ContinuousUniform) Mean() (float64, error) {
	return (d.p.Alpha + d.p.Beta) / 2, nil
}

// Median returns the median.
func (d *ContinuousUniform) Median() (float64, error) {
	return (d.p.Alpha + d.p.Beta) / 2, nil
}

// Variance returns the variance.
func (d *ContinuousUniform) Variance() (float64, error) {
	w := d.p.Beta - d.p.Alpha
	return w * w / 12, nil
}

// Mode is undefined since every point of the support is equally likely.
func (d *ContinuousUniform) Mode() ([]float64, error) {
	return nil, d.undefined("mode")
}

// NextDouble draws a uniform distributed value.
func (d *ContinuousUniform) NextDouble() float64 {
	return d.sample()
}
