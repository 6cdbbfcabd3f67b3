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

package tmath_test

import (
	"testing"

	"github.com/fentec-project/prand/internal/tmath"
	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	assert.True(t, tmath.IsZero(0))
	assert.True(t, tmath.IsZero(1e-7))
	assert.True(t, tmath.IsZero(-1e-7))
	assert.False(t, tmath.IsZero(tmath.Tolerance))
	assert.False(t, tmath.IsZero(-0.01))
}

func TestAreEqual(t *testing.T) {
	assert.True(t, tmath.AreEqual(1, 1+1e-8))
	assert.False(t, tmath.AreEqual(1, 1.001))
}

func TestSquare(t *testing.T) {
	assert.Equal(t, 0.0, tmath.Square(1e-9))
	assert.Equal(t, 9.0, tmath.Square(-3))
}

func TestRedraw(t *testing.T) {
	values := []float64{0, 1e-8, 0.25}
	i := 0
	v := tmath.Redraw(func() float64 {
		v := values[i]
		i++
		return v
	}, tmath.IsZero)
	assert.Equal(t, 0.25, v)
	assert.Equal(t, 3, i)

	assert.Panics(t, func() {
		tmath.Redraw(func() float64 { return 0 }, tmath.IsZero)
	})
}
