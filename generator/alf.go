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

// Lags of the additive lagged Fibonacci recurrence
// x[n] = x[n-55] + x[n-24] mod 2^32.
const (
	alfShortLag = 24
	alfLongLag  = 55
	// words discarded after seeding
	alfWarmUp = 1000
)

// alf is an additive lagged Fibonacci generator on 32-bit words. Its state
// is a ring of the last alfLongLag outputs.
type alf struct {
	x [alfLongLag]uint32
	i int
}

// NewALF returns an additive lagged Fibonacci generator seeded with seed.
// The lag table is filled from an XorShift128 generator with the same seed.
func NewALF(seed uint32) *Engine {
	return newEngine(KindALF, &alf{}, seed)
}

func (a *alf) word() uint32 {
	j := a.i + alfLongLag - alfShortLag
	if j >= alfLongLag {
		j -= alfLongLag
	}
	a.x[a.i] += a.x[j]
	w := a.x[a.i]
	if a.i++; a.i == alfLongLag {
		a.i = 0
	}
	return w
}

func (a *alf) nextDouble() float64 {
	return ToDouble(a.nextULong())
}

func (a *alf) nextULong() uint64 {
	hi := a.word()
	return uint64(hi)<<32 | uint64(a.word())
}

func (a *alf) nextInclusiveMaxValue() int {
	return int(a.word() >> 1)
}

func (a *alf) nextUIntInclusiveMaxValue() uint32 {
	return a.word()
}

func (a *alf) reseed(seed uint32) {
	init := NewXorShift128(seed)
	for k := range a.x {
		a.x[k] = init.NextUIntInclusiveMaxValue()
	}
	// at least one odd word keeps the low bits from degenerating
	a.x[0] |= 1
	a.i = 0
	for k := 0; k < alfWarmUp; k++ {
		a.word()
	}
}
