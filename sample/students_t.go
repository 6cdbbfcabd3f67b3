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

// DefaultStudentsTNu is the default number of degrees of freedom of
// Student's t distribution.
const DefaultStudentsTNu = 1

// StudentsTParams hold the degrees of freedom Nu.
type StudentsTParams struct {
	Nu int
}

func validStudentsT(p StudentsTParams) bool {
	return p.Nu > 0
}

func (r *Registry) sampleStudentsT(g generator.Generator, p StudentsTParams) float64 {
	n := r.normal.Sample(g, stdNormal)
	c := tmath.Redraw(func() float64 {
		return r.chiSquare.Sample(g, ChiSquareParams{K: p.Nu})
	}, tmath.IsZero)
	return n / math.Sqrt(c/float64(p.Nu))
}

// StudentsT is Student's t distribution.
type StudentsT struct {
	dist[StudentsTParams, float64]
}

// NewStudentsT returns Student's t distribution with nu degrees of
// freedom.
func NewStudentsT(nu int, opts ...Option) (*StudentsT, error) {
	d, err := newDist("student's t", (*Registry).StudentsT, StudentsTParams{Nu: nu}, opts)
	if err != nil {
		return nil, err
	}
	return &StudentsT{d}, nil
}

// Nu returns the degrees of freedom.
func (d *StudentsT) Nu() int { return d.p.Nu }

// IsValidNu reports whether nu is a valid value for the degrees of freedom.
func (d *StudentsT) IsValidNu(nu int) bool {
	return d.valid(StudentsTParams{Nu: nu})
}

// SetNu sets the degrees of freedom, keeping the old value if nu is invalid.
func (d *StudentsT) SetNu(nu int) error {
	return d.set(StudentsTParams{Nu: nu})
}

// WithNu returns a copy of d with the degrees of freedom set to nu.
func (d *StudentsT) WithNu(nu int) (*StudentsT, error) {
	c := *d
	if err := c.SetNu(nu); err != nil {
		return nil, err
	}
	return &c, nil
}

// Minimum returns the lower end of the support.
func (d *StudentsT) Minimum() float64 { return math.Inf(-1) }

// Maximum returns the upper end of the support.
func (d *StudentsT) Maximum() float64 { return math.Inf(1) }

// Mean is defined for nu > 1.
func (d *StudentsT) Mean() (float64, error) {
	if d.p.Nu <= 1 {
		return 0, d.undefined("mean")
	}
	return 0, nil
}

// Median returns the median.
func (d *StudentsT) Median() (float64, error) {
	return 0, nil
}

// Variance is defined for nu > 2.
func (d *StudentsT) Variance() (float64, error) {
	if d.p.Nu <= 2 {
		return 0, d.undefined("variance")
	}
	nu := float64(d.p.Nu)
	return nu / (nu - 2), nil
}

// Mode returns the modes.
func (d *StudentsT) Mode() ([]float64, error) {
	return []float64{0}, nil
}

// NextDouble draws a Student's t distributed value.
func (d *StudentsT) NextDouble() float64 {
	return d.sample()
}
