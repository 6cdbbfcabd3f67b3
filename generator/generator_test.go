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

package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fentec-project/prand/generator"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draws = 10000

// drawAll exercises every operation of g once and returns the outputs
// converted to float64.
func drawAll(t *testing.T, g generator.Generator) []float64 {
	buf := make([]byte, 7)
	out := make([]float64, 0, 16)

	n, err := g.NextMax(100)
	require.NoError(t, err)
	r, err := g.NextRange(-50, 50)
	require.NoError(t, err)
	d, err := g.NextDoubleMax(3.5)
	require.NoError(t, err)
	dr, err := g.NextDoubleRange(-2, 2)
	require.NoError(t, err)
	ur, err := g.NextUIntRange(10, 20)
	require.NoError(t, err)

	out = append(out, float64(g.Next()), float64(n), float64(r), float64(g.NextInclusiveMaxValue()))
	out = append(out, g.NextDouble(), d, dr)
	out = append(out, float64(g.NextUInt()), float64(g.NextUIntMax(1000)), float64(ur))
	out = append(out, float64(g.NextUIntInclusiveMaxValue()), float64(g.NextULong()))
	if g.NextBoolean() {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	g.NextBytes(buf)
	for _, b := range buf {
		out = append(out, float64(b))
	}
	return out
}

func TestGenerator_Reproducible(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g1, err := generator.New(kind, 12345)
			require.NoError(t, err)
			g2, err := generator.New(kind, 12345)
			require.NoError(t, err)

			for i := 0; i < draws; i++ {
				require.Equal(t, drawAll(t, g1), drawAll(t, g2))
			}
		})
	}
}

func TestGenerator_Reset(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g, err := generator.New(kind, 7)
			require.NoError(t, err)
			assert.True(t, g.CanReset())
			assert.Equal(t, uint32(7), g.Seed())

			first := make([][]float64, 100)
			for i := range first {
				first[i] = drawAll(t, g)
			}

			assert.True(t, g.Reset())
			for i := range first {
				assert.Equal(t, first[i], drawAll(t, g))
			}

			fresh, err := generator.New(kind, 99)
			require.NoError(t, err)
			assert.True(t, g.ResetSeed(99))
			assert.True(t, g.ResetSeed(99))
			assert.Equal(t, uint32(99), g.Seed())
			for i := 0; i < 100; i++ {
				assert.Equal(t, drawAll(t, fresh), drawAll(t, g))
			}
		})
	}
}

func TestGenerator_Ranges(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g, err := generator.New(kind, 2024)
			require.NoError(t, err)

			for i := 0; i < draws; i++ {
				d := g.NextDouble()
				require.True(t, d >= 0 && d < 1, "NextDouble out of range: %v", d)

				n := g.Next()
				require.True(t, n >= 0 && n < math.MaxInt32)

				m, err := g.NextMax(17)
				require.NoError(t, err)
				require.True(t, m >= 0 && m < 17)

				r, err := g.NextRange(-8, 3)
				require.NoError(t, err)
				require.True(t, r >= -8 && r < 3)

				dm, err := g.NextDoubleMax(0.5)
				require.NoError(t, err)
				require.True(t, dm >= 0 && dm < 0.5)

				dr, err := g.NextDoubleRange(-1e3, 1e3)
				require.NoError(t, err)
				require.True(t, dr >= -1e3 && dr < 1e3)

				u := g.NextUIntMax(9)
				require.True(t, u < 9)

				ur, err := g.NextUIntRange(3, 5)
				require.NoError(t, err)
				require.True(t, ur >= 3 && ur < 5)

				require.True(t, g.NextUInt() < math.MaxUint32)
				require.True(t, g.NextInclusiveMaxValue() >= 0)
			}

			// empty ranges collapse to their bound
			n, err := g.NextMax(0)
			assert.NoError(t, err)
			assert.Equal(t, 0, n)
			r, err := g.NextRange(5, 5)
			assert.NoError(t, err)
			assert.Equal(t, 5, r)
		})
	}
}

func TestGenerator_RangeErrors(t *testing.T) {
	g := generator.NewXorShift128(1)

	_, err := g.NextMax(-1)
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextRange(5, 4)
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextDoubleMax(-0.1)
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextDoubleMax(math.Inf(1))
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextDoubleMax(math.NaN())
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextDoubleRange(1, 0)
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextDoubleRange(-math.MaxFloat64, math.MaxFloat64)
	assert.True(t, errors.Is(err, generator.ErrRange))
	_, err = g.NextUIntRange(2, 1)
	assert.True(t, errors.Is(err, generator.ErrRange))
}

func TestGenerator_NextBytes(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			g, _ := generator.New(kind, 3)
			twin, _ := generator.New(kind, 3)

			buf := make([]byte, 7)
			g.NextBytes(buf)

			u1 := twin.NextUIntInclusiveMaxValue()
			u2 := twin.NextUIntInclusiveMaxValue()
			expect := []byte{
				byte(u1), byte(u1 >> 8), byte(u1 >> 16), byte(u1 >> 24),
				byte(u2), byte(u2 >> 8), byte(u2 >> 16),
			}
			assert.Equal(t, expect, buf)
		})
	}
}

func TestGenerator_NextBoolean(t *testing.T) {
	g := generator.NewNR3(11)
	twin := generator.NewNR3(11)

	buffer := twin.Next()
	for i := 0; i < 31; i++ {
		assert.Equal(t, (buffer>>uint(i))&1 == 1, g.NextBoolean(), "bit %d", i)
	}
	// the 32nd call refills the buffer
	buffer = twin.Next()
	assert.Equal(t, buffer&1 == 1, g.NextBoolean())
}

func TestStandardSource_CannotReset(t *testing.T) {
	g := generator.NewStandardSource(rand.NewSource(5))
	twin := rand.New(rand.NewSource(5))

	assert.False(t, g.CanReset())
	assert.Equal(t, uint32(0), g.Seed())
	assert.Equal(t, twin.Float64(), g.NextDouble())

	assert.False(t, g.Reset())
	assert.False(t, g.ResetSeed(5))
	// state is untouched by the failed reset
	assert.Equal(t, twin.Float64(), g.NextDouble())
	assert.Equal(t, uint32(0), g.Seed())
}

func TestStandard_MatchesHost(t *testing.T) {
	g := generator.NewStandard(42)
	host := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.Equal(t, host.Float64(), g.NextDouble())
		assert.Equal(t, uint32(host.Uint32()), g.NextUIntInclusiveMaxValue())
		assert.Equal(t, int(host.Int31()), g.NextInclusiveMaxValue())
	}
}

func TestNewSeed(t *testing.T) {
	seeds := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		seeds[generator.NewSeed()] = true
	}
	assert.True(t, len(seeds) > 90, "seeds are not well distributed")
}
