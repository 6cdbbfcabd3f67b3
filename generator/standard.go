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
	"math/rand"
)

// standard delegates to the math/rand generator of the Go runtime.
type standard struct {
	rnd *rand.Rand
}

// NewStandard returns a generator backed by a math/rand source seeded
// with seed.
func NewStandard(seed uint32) *Engine {
	return newEngine(KindStandard, &standard{}, seed)
}

// NewStandardSource wraps an existing math/rand source. The state of src
// cannot be recreated from a seed, so the returned generator reports
// CanReset() == false and its Seed is 0.
func NewStandardSource(src rand.Source) *Engine {
	return &Engine{
		kind: KindStandard,
		src:  &standard{rnd: rand.New(src)},
	}
}

func (s *standard) nextDouble() float64 {
	return s.rnd.Float64()
}

func (s *standard) nextInclusiveMaxValue() int {
	return int(s.rnd.Int31())
}

func (s *standard) nextUIntInclusiveMaxValue() uint32 {
	return s.rnd.Uint32()
}

func (s *standard) nextULong() uint64 {
	return s.rnd.Uint64()
}

func (s *standard) reseed(seed uint32) {
	s.rnd = rand.New(rand.NewSource(int64(seed)))
}
