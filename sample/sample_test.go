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
	"math"
	"math/rand"
	"testing"

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder counts and records the doubles drawn from the wrapped engine.
type recorder struct {
	*generator.Engine
	draws []float64
}

func (r *recorder) NextDouble() float64 {
	v := r.Engine.NextDouble()
	r.draws = append(r.draws, v)
	return v
}

func TestBeta_Validation(t *testing.T) {
	b, err := sample.NewBeta(sample.DefaultBetaAlpha, sample.DefaultBetaBeta, sample.WithSeed(1))
	require.NoError(t, err)

	assert.False(t, b.IsValidAlpha(0))
	assert.True(t, b.IsValidAlpha(1))
	assert.True(t, b.IsValidBeta(1))

	_, err = sample.NewBeta(0, 1)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))
}

func TestNew_InvalidParameters(t *testing.T) {
	var tests = []struct {
		name  string
		build func() error
	}{
		{"Beta_NaN", func() error { _, err := sample.NewBeta(math.NaN(), 1); return err }},
		{"BetaPrime_Negative", func() error { _, err := sample.NewBetaPrime(1, -1); return err }},
		{"Cauchy_ZeroScale", func() error { _, err := sample.NewCauchy(0, 0); return err }},
		{"Chi_Zero", func() error { _, err := sample.NewChi(0); return err }},
		{"ChiSquare_Negative", func() error { _, err := sample.NewChiSquare(-2); return err }},
		{"ContinuousUniform_Inverted", func() error { _, err := sample.NewContinuousUniform(1, 0); return err }},
		{"ContinuousUniform_Infinite", func() error {
			_, err := sample.NewContinuousUniform(-math.MaxFloat64, math.MaxFloat64)
			return err
		}},
		{"Erlang_ZeroRate", func() error { _, err := sample.NewErlang(1, 0); return err }},
		{"Exponential_NaN", func() error { _, err := sample.NewExponential(math.NaN()); return err }},
		{"FisherSnedecor_Zero", func() error { _, err := sample.NewFisherSnedecor(0, 1); return err }},
		{"FisherTippett_InfiniteMu", func() error { _, err := sample.NewFisherTippett(1, math.Inf(1)); return err }},
		{"Gamma_ZeroShape", func() error { _, err := sample.NewGamma(0, 1); return err }},
		{"Laplace_NaNMu", func() error { _, err := sample.NewLaplace(1, math.NaN()); return err }},
		{"Logistic_NaNMu", func() error { _, err := sample.NewLogistic(math.NaN(), 1); return err }},
		{"Lognormal_ZeroSigma", func() error { _, err := sample.NewLognormal(0, 0); return err }},
		{"Normal_NegativeSigma", func() error { _, err := sample.NewNormal(0, -1); return err }},
		{"Pareto_ZeroScale", func() error { _, err := sample.NewPareto(0, 1); return err }},
		{"Power_ZeroShape", func() error { _, err := sample.NewPower(0, 1); return err }},
		{"Rayleigh_NaN", func() error { _, err := sample.NewRayleigh(math.NaN()); return err }},
		{"StudentsT_Zero", func() error { _, err := sample.NewStudentsT(0); return err }},
		{"Triangular_ModeOutside", func() error { _, err := sample.NewTriangular(0, 1, 2); return err }},
		{"Triangular_Empty", func() error { _, err := sample.NewTriangular(1, 1, 1); return err }},
		{"Weibull_ZeroScale", func() error { _, err := sample.NewWeibull(1, 0); return err }},
		{"Bernoulli_AboveOne", func() error { _, err := sample.NewBernoulli(1.5); return err }},
		{"Binomial_NegativeTrials", func() error { _, err := sample.NewBinomial(0.5, -1); return err }},
		{"Categorical_Empty", func() error { _, err := sample.NewCategorical(nil); return err }},
		{"Categorical_Negative", func() error { _, err := sample.NewCategorical([]float64{1, -1}); return err }},
		{"Categorical_AllZero", func() error { _, err := sample.NewCategorical([]float64{0, 0}); return err }},
		{"Categorical_NaN", func() error { _, err := sample.NewCategorical([]float64{1, math.NaN()}); return err }},
		{"Categorical_Inf", func() error { _, err := sample.NewCategorical([]float64{1, math.Inf(1)}); return err }},
		{"CategoricalCount_Zero", func() error { _, err := sample.NewCategoricalCount(0); return err }},
		{"DiscreteUniform_Inverted", func() error { _, err := sample.NewDiscreteUniform(2, 1); return err }},
		{"DiscreteUniform_MaxInt32", func() error { _, err := sample.NewDiscreteUniform(0, math.MaxInt32); return err }},
		{"Geometric_Zero", func() error { _, err := sample.NewGeometric(0); return err }},
		{"Poisson_Zero", func() error { _, err := sample.NewPoisson(0); return err }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, sample.ErrInvalidParameter), "unexpected error %v", err)
		})
	}
}

func TestNew_NullEngine(t *testing.T) {
	_, err := sample.NewNormal(0, 1, sample.WithGenerator(nil))
	assert.True(t, errors.Is(err, sample.ErrNullEngine))

	var e *generator.Engine
	_, err = sample.NewPoisson(1, sample.WithGenerator(e))
	assert.True(t, errors.Is(err, sample.ErrNullEngine))
}

func TestNew_Defaults(t *testing.T) {
	n, err := sample.NewNormal(sample.DefaultNormalMu, sample.DefaultNormalSigma)
	require.NoError(t, err)
	require.NotNil(t, n.Generator())
	assert.True(t, n.CanReset())
	assert.Equal(t, sample.NormalParams{Mu: 0, Sigma: 1}, n.Params())

	l, err := sample.NewLogistic(sample.DefaultLogisticMu, sample.DefaultLogisticSigma)
	require.NoError(t, err)
	assert.Equal(t, 1.0, l.Mu())
}

func TestSetter_KeepsValueOnError(t *testing.T) {
	n, err := sample.NewNormal(1, 2, sample.WithSeed(3))
	require.NoError(t, err)

	err = n.SetSigma(-1)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))
	assert.Equal(t, 2.0, n.Sigma())

	require.NoError(t, n.SetSigma(0.5))
	assert.Equal(t, 0.5, n.Sigma())

	tr, err := sample.NewTriangular(0, 10, 5, sample.WithSeed(3))
	require.NoError(t, err)
	// The new lower bound is checked against the current mode.
	assert.Error(t, tr.SetAlpha(6))
	assert.Equal(t, 0.0, tr.Alpha())
	assert.False(t, tr.IsValidAlpha(6))
	assert.True(t, tr.IsValidAlpha(5))
}

func TestWith_ReturnsNewValue(t *testing.T) {
	n, err := sample.NewNormal(1, 2, sample.WithSeed(3))
	require.NoError(t, err)

	m, err := n.WithMu(5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, n.Mu())
	assert.Equal(t, 5.0, m.Mu())
	assert.Equal(t, 2.0, m.Sigma())
	assert.Same(t, n.Generator(), m.Generator())

	m, err = n.WithSigma(0)
	assert.Nil(t, m)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))

	c, err := sample.NewCategorical([]float64{1, 1}, sample.WithSeed(3))
	require.NoError(t, err)
	c2, err := c.WithWeights([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, c.Weights())
	assert.Equal(t, 1, c2.Next())
}

func TestReset_CannotReset(t *testing.T) {
	g := generator.NewStandardSource(rand.NewSource(1))
	n, err := sample.NewNormal(0, 1, sample.WithGenerator(g))
	require.NoError(t, err)

	assert.False(t, n.CanReset())
	assert.False(t, n.Reset())
}

func TestSharedGenerator(t *testing.T) {
	rec := &recorder{Engine: generator.NewXorShift128(99)}
	n, err := sample.NewNormal(0, 1, sample.WithGenerator(rec))
	require.NoError(t, err)
	e, err := sample.NewExponential(2, sample.WithGenerator(rec))
	require.NoError(t, err)
	require.Same(t, n.Generator(), e.Generator())

	run := func() []float64 {
		var out []float64
		for i := 0; i < 100; i++ {
			out = append(out, n.NextDouble(), e.NextDouble())
		}
		return out
	}

	first := run()
	firstDraws := append([]float64(nil), rec.draws...)

	// Resetting through one distribution resets the other one as well.
	require.True(t, e.Reset())
	rec.draws = nil
	assert.Equal(t, first, run())
	assert.Equal(t, firstDraws, rec.draws)

	ref := generator.NewXorShift128(99)
	for i, v := range firstDraws {
		require.Equal(t, ref.NextDouble(), v, "draw %d", i)
	}
}

func TestUndefinedMoments(t *testing.T) {
	c, err := sample.NewCauchy(1, 2, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = c.Mean()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
	_, err = c.Variance()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
	m, err := c.Median()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	b, err := sample.NewBeta(1, 1, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = b.Median()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
	_, err = b.Mode()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
	assert.False(t, errors.Is(err, sample.ErrInvalidParameter))

	st, err := sample.NewStudentsT(2, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = st.Mean()
	assert.NoError(t, err)
	_, err = st.Variance()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))

	p, err := sample.NewPareto(1, 1, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = p.Mean()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))

	f, err := sample.NewFisherSnedecor(2, 3, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = f.Mode()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
	_, err = f.Variance()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))

	g, err := sample.NewGamma(0.5, 1, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = g.Mode()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))

	u, err := sample.NewContinuousUniform(0, 1, sample.WithSeed(1))
	require.NoError(t, err)
	_, err = u.Mode()
	assert.True(t, errors.Is(err, sample.ErrUndefinedMoment))
}

func TestModes(t *testing.T) {
	var tests = []struct {
		name   string
		build  func() (sample.Distribution, error)
		expect []float64
	}{
		{"Beta_Unimodal", func() (sample.Distribution, error) { return sample.NewBeta(3, 3) }, []float64{0.5}},
		{"Beta_UShaped", func() (sample.Distribution, error) { return sample.NewBeta(0.5, 0.5) }, []float64{0, 1}},
		{"Beta_Left", func() (sample.Distribution, error) { return sample.NewBeta(1, 3) }, []float64{0}},
		{"Beta_Right", func() (sample.Distribution, error) { return sample.NewBeta(2, 0.5) }, []float64{1}},
		{"Chi", func() (sample.Distribution, error) { return sample.NewChi(5) }, []float64{2}},
		{"ChiSquare", func() (sample.Distribution, error) { return sample.NewChiSquare(1) }, []float64{0}},
		{"Lognormal", func() (sample.Distribution, error) { return sample.NewLognormal(1, 1) }, []float64{1}},
		{"Power_Increasing", func() (sample.Distribution, error) { return sample.NewPower(2, 3) }, []float64{3}},
		{"Weibull", func() (sample.Distribution, error) { return sample.NewWeibull(2, 2) }, []float64{math.Sqrt2}},
		{"Bernoulli_Even", func() (sample.Distribution, error) { return sample.NewBernoulli(0.5) }, []float64{0, 1}},
		{"Bernoulli_High", func() (sample.Distribution, error) { return sample.NewBernoulli(0.7) }, []float64{1}},
		{"Binomial_Even", func() (sample.Distribution, error) { return sample.NewBinomial(0.5, 1) }, []float64{0, 1}},
		{"Binomial", func() (sample.Distribution, error) { return sample.NewBinomial(0.3, 10) }, []float64{3}},
		{"Categorical", func() (sample.Distribution, error) {
			return sample.NewCategorical([]float64{1, 3, 3})
		}, []float64{1, 2}},
		{"Poisson_Integral", func() (sample.Distribution, error) { return sample.NewPoisson(4) }, []float64{3, 4}},
		{"Poisson", func() (sample.Distribution, error) { return sample.NewPoisson(4.5) }, []float64{4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := test.build()
			require.NoError(t, err)
			mode, err := d.Mode()
			require.NoError(t, err)
			assert.InDeltaSlice(t, test.expect, mode, 1e-12)
		})
	}
}
