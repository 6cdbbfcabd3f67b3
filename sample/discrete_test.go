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
	"testing"

	"github.com/fentec-project/prand/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorical_Median(t *testing.T) {
	var tests = []struct {
		weights []float64
		expect  float64
	}{
		{[]float64{1, 1}, 0.5},
		{[]float64{1, 0, 1}, 1},
		{[]float64{1, 2, 1}, 1},
		{[]float64{1, 2, 3, 4}, 2},
		{[]float64{0, 0, 5}, 2},
	}

	for _, test := range tests {
		c, err := sample.NewCategorical(test.weights)
		require.NoError(t, err)
		m, err := c.Median()
		require.NoError(t, err)
		assert.InDelta(t, test.expect, m, 1e-12, "weights %v", test.weights)
	}
}

func TestCategorical_ZeroWeightsNeverDrawn(t *testing.T) {
	c, err := sample.NewCategorical([]float64{0, 3, 0, 1, 0, 0}, sample.WithSeed(8))
	require.NoError(t, err)

	counts := make([]int, 6)
	for i := 0; i < 100000; i++ {
		counts[c.Next()]++
	}
	assert.Zero(t, counts[0])
	assert.Zero(t, counts[2])
	assert.Zero(t, counts[4])
	assert.Zero(t, counts[5])
	assert.InEpsilon(t, 3.0, float64(counts[1])/float64(counts[3]), 0.1)
}

func TestCategorical_CopiesWeights(t *testing.T) {
	w := []float64{1, 1, 1}
	c, err := sample.NewCategorical(w)
	require.NoError(t, err)

	w[0] = 100
	assert.Equal(t, []float64{1, 1, 1}, c.Weights())

	got := c.Weights()
	got[1] = 100
	assert.Equal(t, []float64{1, 1, 1}, c.Weights())
}

func TestCategoricalCount(t *testing.T) {
	c, err := sample.NewCategoricalCount(sample.DefaultCategoricalValueCount)
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Maximum())

	c, err = sample.NewCategoricalCount(4, sample.WithSeed(2))
	require.NoError(t, err)
	mean, err := c.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, mean, 1e-12)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[c.Next()] = true
	}
	assert.Len(t, seen, 4)
}

func TestDiscreteUniform_Bounds(t *testing.T) {
	d, err := sample.NewDiscreteUniform(-3, 6, sample.WithSeed(4))
	require.NoError(t, err)

	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := d.Next()
		require.True(t, v >= -3 && v <= 6, "%d out of range", v)
		seen[v] = true
	}
	assert.Len(t, seen, 10)

	single, err := sample.NewDiscreteUniform(5, 5, sample.WithSeed(4))
	require.NoError(t, err)
	assert.Equal(t, 5, single.Next())
}

func TestDiscreteUniform_Int32Bounds(t *testing.T) {
	d, err := sample.NewDiscreteUniform(math.MinInt32, 0, sample.WithSeed(3))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := d.Next()
		require.True(t, v >= math.MinInt32 && v <= 0, "%d out of range", v)
	}

	wide, err := sample.NewDiscreteUniform(math.MinInt32, math.MaxInt32-1, sample.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, wide.Next() >= math.MinInt32)

	_, err = sample.NewDiscreteUniform(math.MinInt32-1, 0)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))
	_, err = sample.NewDiscreteUniform(0, math.MaxInt32)
	assert.True(t, errors.Is(err, sample.ErrInvalidParameter))
}

func TestGeometric_TinyAlpha(t *testing.T) {
	for _, alpha := range []float64{1e-20, 1e-300, math.SmallestNonzeroFloat64} {
		g, err := sample.NewGeometric(alpha, sample.WithSeed(11))
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			v := g.Next()
			require.True(t, v >= 1 && v <= math.MaxInt32, "alpha %v drew %d", alpha, v)
		}
	}
}

func TestBinomial_Degenerate(t *testing.T) {
	never, err := sample.NewBinomial(0, 20, sample.WithSeed(1))
	require.NoError(t, err)
	always, err := sample.NewBinomial(1, 20, sample.WithSeed(1))
	require.NoError(t, err)
	none, err := sample.NewBinomial(0.5, 0, sample.WithSeed(1))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, never.Next())
		assert.Equal(t, 20, always.Next())
		assert.Equal(t, 0, none.Next())
	}
}

func TestGeometric_CertainSuccess(t *testing.T) {
	g, err := sample.NewGeometric(1, sample.WithSeed(1))
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, g.Next())
	}
}
