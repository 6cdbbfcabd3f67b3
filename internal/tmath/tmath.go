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


// Package tmath contains the small numeric helpers used by the samplers.
package tmath

import (
	"fmt"
)

// Tolerance is the absolute tolerance used by IsZero and AreEqual.
const Tolerance = 1e-6

// MaxRedraws bounds every zero-avoidance loop. A uniform engine that keeps
// producing rejected values for this many draws is considered broken.
const MaxRedraws = 1 << 20

// IsZero reports whether d lies strictly within Tolerance of zero.
func IsZero(d float64) bool {
	return d > -Tolerance && d < Tolerance
}

// AreEqual reports whether d1 and d2 differ by less than Tolerance.
func AreEqual(d1, d2 float64) bool {
	return IsZero(d1 - d2)
}

// Square returns d*d, or exactly 0 when d is numerically zero.
func Square(d float64) float64 {
	if IsZero(d) {
		return 0
	}
	return d * d
}

// Redraw calls draw until reject returns false for the drawn value and
// returns that value. It panics after MaxRedraws rejected draws.
func Redraw(draw func() float64, reject func(float64) bool) float64 {
	for i := 0; i < MaxRedraws; i++ {
		if v := draw(); !reject(v) {
			return v
		}
	}
	panic(fmt.Sprintf("tmath: no acceptable draw after %d attempts", MaxRedraws))
}
