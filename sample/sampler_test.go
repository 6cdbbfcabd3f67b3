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

	"github.com/fentec-project/prand/generator"
	"github.com/fentec-project/prand/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script returns a fixed cycle of doubles from NextDouble and counts the
// calls. Every other method comes from the wrapped engine.
type script struct {
	*generator.Engine
	values []float64
	calls  int
}

func newScript(values ...float64) *script {
	return &script{Engine: generator.NewXorShift128(1), values: values}
}

func (s *script) NextDouble() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func TestPoisson_RedrawsZero(t *testing.T) {
	g := newScript(0, 0.5, 0.1)
	p, err := sample.NewPoisson(1, sample.WithGenerator(g))
	require.NoError(t, err)

	// 0.5 * e stays above 1, 0.5 * e * 0.1 does not
	assert.Equal(t, 1, p.Next())
	assert.Equal(t, 3, g.calls)
}

func TestPoisson_LargeRate(t *testing.T) {
	g := newScript(0.5)
	p, err := sample.NewPoisson(1200, sample.WithGenerator(g))
	require.NoError(t, err)

	// exp(1200) overflows, so the rate is applied in steps of 500. The
	// first n with 0.5^n * e^1200 <= 1 is 1732.
	assert.Equal(t, 1731, p.Next())
	assert.Equal(t, 1732, g.calls)
}

func TestLogistic_RedrawsSaturated(t *testing.T) {
	var tests = []struct {
		name   string
		values []float64
		expect float64
		calls  int
	}{
		{"Low", []float64{0, 1e-7, 0.25}, 1 + 2*math.Log(1.0/3), 3},
		{"High", []float64{1 - 1e-9, 0.75}, 1 + 2*math.Log(3), 2},
		{"Half", []float64{0.5}, 1, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := newScript(test.values...)
			l, err := sample.NewLogistic(1, 2, sample.WithGenerator(g))
			require.NoError(t, err)

			assert.InDelta(t, test.expect, l.NextDouble(), 1e-12)
			assert.Equal(t, test.calls, g.calls)
		})
	}
}

func TestBeta_RedrawsSecondGamma(t *testing.T) {
	r := sample.NewRegistry()
	draws := []float64{1e-7, 1e-7, 1}
	var shapes []float64
	r.Gamma().SetSampler(func(_ generator.Generator, p sample.GammaParams) float64 {
		shapes = append(shapes, p.Alpha)
		v := draws[0]
		draws = draws[1:]
		return v
	})

	b, err := sample.NewBeta(2, 3, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)

	// the sum 2e-7 is numerically zero, so only the second draw is replaced
	assert.InDelta(t, 1e-7/(1+1e-7), b.NextDouble(), 1e-18)
	assert.Equal(t, []float64{2, 3, 3}, shapes)
}

func TestBeta_PanicsWhenGammaDrawsVanish(t *testing.T) {
	r := sample.NewRegistry()
	r.Gamma().SetSampler(func(generator.Generator, sample.GammaParams) float64 {
		return 0
	})
	b, err := sample.NewBeta(1e-9, 1e-9, sample.WithSeed(1), sample.WithRegistry(r))
	require.NoError(t, err)

	assert.Panics(t, func() { b.NextDouble() })
}

func TestSamplers_SeededVectors(t *testing.T) {
	var tests = []struct {
		name   string
		build  func() (sample.Continuous, error)
		expect []float64
	}{
		{
			name:   "Beta",
			build:  func() (sample.Continuous, error) { return sample.NewBeta(2, 3, sample.WithSeed(7)) },
			expect: []float64{0.6788310306878171, 0.06735591012729476, 0.3908422104801341, 0.5511944012498406},
		},
		{
			name:   "BetaSmallShapes",
			build:  func() (sample.Continuous, error) { return sample.NewBeta(0.5, 0.7, sample.WithSeed(7)) },
			expect: []float64{0.8615692779628287, 0.02819149563696921, 0.28286660095825616, 0.003346879893544149},
		},
		{
			name:   "Logistic",
			build:  func() (sample.Continuous, error) { return sample.NewLogistic(1, 0.5, sample.WithSeed(7)) },
			expect: []float64{1.4569806835496795, 1.2544544934512127, 1.151331890725702, 2.757095133710763},
		},
		{
			name:   "Rayleigh",
			build:  func() (sample.Continuous, error) { return sample.NewRayleigh(2, sample.WithSeed(7)) },
			expect: []float64{2.902060358234143, 1.984482648112771, 3.4499119449814764, 4.344055075545751},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := test.build()
			require.NoError(t, err)
			for i, exp := range test.expect {
				assert.InDelta(t, exp, d.NextDouble(), 1e-9, "draw %d", i)
			}
		})
	}
}

func TestPoisson_SeededVectors(t *testing.T) {
	var tests = []struct {
		lambda float64
		expect []int
	}{
		{7, []int{10, 8, 10, 7, 6, 6, 4, 5}},
		{1200, []int{1230, 1291, 1209, 1198}},
	}

	for _, test := range tests {
		p, err := sample.NewPoisson(test.lambda, sample.WithSeed(7))
		require.NoError(t, err)
		for i, exp := range test.expect {
			assert.Equal(t, exp, p.Next(), "lambda %v draw %d", test.lambda, i)
		}
	}
}
