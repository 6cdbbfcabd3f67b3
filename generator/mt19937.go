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
	"gonum.org/v1/gonum/mathext/prng"
)

// mt19937 is the 32-bit Mersenne Twister with period 2^19937-1. Seeding
// follows init_genrand, so outputs match the reference implementation and
// NumPy's RandomState for the same seed.
type mt19937 struct {
	mt *prng.MT19937
}

// NewMT19937 returns a Mersenne Twister generator seeded with seed.
func NewMT19937(seed uint32) *Engine {
	return newEngine(KindMT19937, &mt19937{mt: prng.NewMT19937()}, seed)
}

// nextDouble uses 53 bits from two successive outputs (genrand_res53).
func (s *mt19937) nextDouble() float64 {
	a := s.mt.Uint32() >> 5
	b := s.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

func (s *mt19937) nextInclusiveMaxValue() int {
	return int(s.mt.Uint32() >> 1)
}

func (s *mt19937) nextUIntInclusiveMaxValue() uint32 {
	return s.mt.Uint32()
}

func (s *mt19937) nextULong() uint64 {
	hi := uint64(s.mt.Uint32())
	lo := uint64(s.mt.Uint32())
	return hi<<32 | lo
}

func (s *mt19937) reseed(seed uint32) {
	s.mt.Seed(uint64(seed))
}
