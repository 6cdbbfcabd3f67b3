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

package sample_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/sample"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SetSampler(t *testing.T) {
	r := sample.NewRegistry()
	n, err := sample.NewNormal(0, 1, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)
	other, err := sample.NewNormal(0, 1, sample.WithSeed(1))
	require.NoError(t, err)

	r.Normal().SetSampler(func(g generator.Generator, p sample.NormalParams) float64 {
		return p.Mu + 42
	})
	assert.Equal(t, 42.0, n.NextDouble())
	assert.NotEqual(t, 42.0, other.NextDouble())

	// Instances created after the replacement see it too.
	m, err := sample.NewNormal(1, 1, sample.WithRegistry(r))
	require.NoError(t, err)
	assert.Equal(t, 43.0, m.NextDouble())

	r.Normal().Restore()
	assert.NotEqual(t, 42.0, n.NextDouble())
}

func TestRegistry_SetValidator(t *testing.T) {
	r := sample.NewRegistry()
	b, err := sample.NewBeta(1, 1, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)
	require.False(t, b.IsValidAlpha(0))

	r.Beta().SetValidator(func(p sample.BetaParams) bool {
		return p.Alpha >= 0 && p.Beta > 0
	})
	assert.True(t, b.IsValidAlpha(0))
	require.NoError(t, b.SetAlpha(0))
	assert.Equal(t, 0.0, b.Alpha())

	r.Beta().SetValidator(nil)
	assert.False(t, b.IsValidAlpha(0))
	err = b.SetBeta(2)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))
	assert.Equal(t, 1.0, b.Beta())
}

func TestRegistry_Default(t *testing.T) {
	p, err := sample.NewPoisson(3, sample.WithSeed(1))
	require.NoError(t, err)

	sample.DefaultRegistry.Poisson().SetSampler(func(generator.Generator, sample.PoissonParams) int {
		return 7
	})
	defer sample.DefaultRegistry.Poisson().Restore()

	assert.Equal(t, 7, p.Next())
	assert.Equal(t, 7.0, p.NextDouble())
}

func TestRegistry_ComposedSamplers(t *testing.T) {
	r := sample.NewRegistry()
	b, err := sample.NewBeta(2, 3, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)
	ray, err := sample.NewRayleigh(1, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)
	other, err := sample.NewBeta(2, 3, sample.WithSeed(1))
	require.NoError(t, err)

	r.Gamma().SetSampler(func(generator.Generator, sample.GammaParams) float64 {
		return 1
	})
	assert.Equal(t, 0.5, b.NextDouble())
	assert.NotEqual(t, 0.5, other.NextDouble())

	r.Normal().SetSampler(func(generator.Generator, sample.NormalParams) float64 {
		return 3
	})
	assert.InDelta(t, math.Sqrt(18), ray.NextDouble(), 1e-12)

	chi, err := sample.NewChiSquare(4, sample.WithRegistry(r))
	require.NoError(t, err)
	assert.Equal(t, 36.0, chi.NextDouble())

	r.Gamma().Restore()
	r.Normal().Restore()
	v := b.NextDouble()
	assert.True(t, v > 0 && v < 1)
	assert.NotEqual(t, 0.5, v)
}

func TestRegistry_HooksAreCallable(t *testing.T) {
	r := sample.NewRegistry()
	g := generator.NewXorShift128(5)

	assert.True(t, r.Gamma().Valid(sample.GammaParams{Alpha: 2, Beta: 1}))
	assert.False(t, r.Gamma().Valid(sample.GammaParams{Alpha: 2, Beta: 0}))
	assert.Equal(t, 1, r.Categorical().Sample(g, sample.CategoricalParams{Weights: []float64{0, 1}}))

	v := r.Beta().Sample(g, sample.BetaParams{Alpha: 2, Beta: 2})
	assert.True(t, v >= 0 && v <= 1)
}

func TestRegistry_Logger(t *testing.T) {
	var buf bytes.Buffer
	r := sample.NewRegistry()
	r.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	r.Weibull().SetSampler(nil)
	assert.Contains(t, buf.String(), `"hook":"weibull"`)
	assert.Contains(t, buf.String(), "sampler replaced")

	buf.Reset()
	std := generator.NewStandardSource(fixedSource(0))
	n, err := sample.NewNormal(0, 1, sample.WithGenerator(std), sample.WithRegistry(r))
	require.NoError(t, err)
	assert.False(t, n.Reset())
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

// fixedSource is a math/rand source that always yields the same value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }

func (s fixedSource) Seed(int64) {}
