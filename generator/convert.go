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

package generator

import (
	"math"
)

const (
	// ulongToIntShift keeps 31 bits of a 64-bit word.
	ulongToIntShift = 33
	// ulongToUIntShift keeps 32 bits of a 64-bit word.
	ulongToUIntShift = 32

	// exponent bits of the float64 value 1.0
	oneExponent = uint64(0x3FF0000000000000)
)

// ToDouble maps a 64-bit word to a float64 in [0, 1). The upper 52 bits of
// x become the mantissa of a value in [1, 2), from which 1 is subtracted,
// so the result is never rounded up to 1.
func ToDouble(x uint64) float64 {
	return math.Float64frombits(oneExponent|(x>>12)) - 1.0
}

// stepper advances a recurrence with 64 bits of output per step.
type stepper interface {
	step() uint64
	reseed(seed uint32)
}

// word64 adapts a stepper to source. Integer draws only need 32 of the 64
// bits produced by a step, so the low half of the last word is kept for
// exactly one following integer draw. Draws consuming a whole word drop it.
type word64 struct {
	stepper
	last  uint64
	spare bool
}

func newWord64(s stepper) *word64 {
	return &word64{stepper: s}
}

func (w *word64) nextDouble() float64 {
	w.spare = false
	return ToDouble(w.step())
}

func (w *word64) nextULong() uint64 {
	w.spare = false
	return w.step()
}

func (w *word64) nextInclusiveMaxValue() int {
	if w.spare {
		w.spare = false
		return int(w.last << ulongToIntShift >> ulongToIntShift)
	}
	w.last = w.step()
	w.spare = true
	return int(w.last >> ulongToIntShift)
}

func (w *word64) nextUIntInclusiveMaxValue() uint32 {
	if w.spare {
		w.spare = false
		return uint32(w.last << ulongToUIntShift >> ulongToUIntShift)
	}
	w.last = w.step()
	w.spare = true
	return uint32(w.last >> ulongToUIntShift)
}

func (w *word64) reseed(seed uint32) {
	w.stepper.reseed(seed)
	w.last = 0
	w.spare = false
}
