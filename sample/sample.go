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
	"reflect"

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/internal"
	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when distribution parameters fail the
// validity predicate of their kind.
var ErrInvalidParameter = internal.ErrInvalidParameter

// ErrUndefinedMoment is returned by moment accessors whose value is not
// defined for the current parameters.
var ErrUndefinedMoment = internal.ErrUndefinedMoment

// ErrNullEngine is returned when a distribution is given a nil generator.
var ErrNullEngine = internal.ErrNullEngine

// Distribution is the part shared by continuous and discrete distributions.
type Distribution interface {
	Generator() generator.Generator
	CanReset() bool
	Reset() bool

	Minimum() float64
	Maximum() float64
	Mean() (float64, error)
	Median() (float64, error)
	Variance() (float64, error)
	Mode() ([]float64, error)
}

// Continuous is a distribution sampled as float64 values.
type Continuous interface {
	Distribution
	NextDouble() float64
}

// Discrete is a distribution over integers.
type Discrete interface {
	Continuous
	Next() int
}

type config struct {
	gen    generator.Generator
	genSet bool
	reg    *Registry
}

// Option configures the construction of a distribution.
type Option func(*config)

// WithGenerator makes the distribution draw from g. The generator is shared,
// not copied. A nil g makes construction fail with ErrNullEngine.
func WithGenerator(g generator.Generator) Option {
	return func(c *config) {
		c.gen = g
		c.genSet = true
	}
}

// WithSeed makes the distribution draw from a new XorShift128 generator
// seeded with seed.
func WithSeed(seed uint32) Option {
	return func(c *config) {
		c.gen = generator.NewXorShift128(seed)
		c.genSet = true
	}
}

// WithRegistry makes the distribution use the hooks of r instead of
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.reg = r
	}
}

func isNil(g generator.Generator) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// dist is embedded by every distribution. P is the parameter set of the
// kind and T the type of its samples.
type dist[P any, T any] struct {
	name string
	gen  generator.Generator
	reg  *Registry
	hook func(*Registry) *Hook[P, T]
	p    P
}

func newDist[P any, T any](name string, hook func(*Registry) *Hook[P, T], p P, opts []Option) (dist[P, T], error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.genSet && isNil(c.gen) {
		return dist[P, T]{}, errors.Wrapf(ErrNullEngine, "%s", name)
	}
	if c.gen == nil {
		c.gen = generator.NewDefault()
	}
	if c.reg == nil {
		c.reg = DefaultRegistry
	}

	d := dist[P, T]{
		name: name,
		gen:  c.gen,
		reg:  c.reg,
		hook: hook,
	}
	if err := d.set(p); err != nil {
		return dist[P, T]{}, err
	}
	return d, nil
}

// Generator returns the generator the distribution draws from.
func (d *dist[P, T]) Generator() generator.Generator {
	return d.gen
}

// CanReset reports whether the underlying generator can be reset.
func (d *dist[P, T]) CanReset() bool {
	return d.gen.CanReset()
}

// Reset resets the underlying generator, which affects every distribution
// sharing it.
func (d *dist[P, T]) Reset() bool {
	if !d.gen.Reset() {
		d.reg.logger().Warn().Str("distribution", d.name).Msg("generator cannot be reset")
		return false
	}
	return true
}

// Params returns the current parameters.
func (d *dist[P, T]) Params() P {
	return d.p
}

func (d *dist[P, T]) valid(p P) bool {
	return d.hook(d.reg).Valid(p)
}

// set validates p against the current validator before assigning it.
func (d *dist[P, T]) set(p P) error {
	if !d.valid(p) {
		return errors.Wrapf(ErrInvalidParameter, "%s: %+v", d.name, p)
	}
	d.p = p
	return nil
}

func (d *dist[P, T]) sample() T {
	return d.hook(d.reg).Sample(d.gen, d.p)
}

func (d *dist[P, T]) undefined(moment string) error {
	return errors.Wrapf(ErrUndefinedMoment, "%s %s for %+v", d.name, moment, d.p)
}

var (
	_ Continuous = (*Beta)(nil)
	_ Continuous = (*BetaPrime)(nil)
	_ Continuous = (*Cauchy)(nil)
	_ Continuous = (*Chi)(nil)
	_ Continuous = (*ChiSquare)(nil)
	_ Continuous = (*ContinuousUniform)(nil)
	_ Continuous = (*Erlang)(nil)
	_ Continuous = (*Exponential)(nil)
	_ Continuous = (*FisherSnedecor)(nil)
	_ Continuous = (*FisherTippett)(nil)
	_ Continuous = (*Gamma)(nil)
	_ Continuous = (*Laplace)(nil)
	_ Continuous = (*Logistic)(nil)
	_ Continuous = (*Lognormal)(nil)
	_ Continuous = (*Normal)(nil)
	_ Continuous = (*Pareto)(nil)
	_ Continuous = (*Power)(nil)
	_ Continuous = (*Rayleigh)(nil)
	_ Continuous = (*StudentsT)(nil)
	_ Continuous = (*Triangular)(nil)
	_ Continuous = (*Weibull)(nil)

	_ Discrete = (*Bernoulli)(nil)
	_ Discrete = (*Binomial)(nil)
	_ Discrete = (*Categorical)(nil)
	_ Discrete = (*DiscreteUniform)(nil)
	_ Discrete = (*Geometric)(nil)
	_ Discrete = (*Poisson)(nil)
)
