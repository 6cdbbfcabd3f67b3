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

// Constants of the combined generator from Numerical Recipes, 3rd edition.
const (
	NR3SeedU1 = uint64(2862933555777941757)
	NR3SeedU2 = uint64(7046029254386353087)
	NR3SeedU3 = uint64(4294957665)
	NR3SeedV  = uint64(4101842887655102017)
	NR3SeedW  = uint64(1)
)

// nr3 combines a linear congruential step on u, a 64-bit xorshift on v and
// a multiply-with-carry step on w. Its period is about 3.138*10^57.
type nr3 struct {
	u, v, w, x uint64
}

// NewNR3 returns an NR3 generator seeded with seed.
func NewNR3(seed uint32) *Engine {
	return newEngine(KindNR3, newWord64(&nr3{}), seed)
}

func (s *nr3) step() uint64 {
	s.u = s.u*NR3SeedU1 + NR3SeedU2
	s.v ^= s.v >> 17
	s.v ^= s.v << 31
	s.v ^= s.v >> 8
	s.w = NR3SeedU3*(s.w&0xFFFFFFFF) + (s.w >> 32)
	s.x = s.u ^ (s.u << 21)
	s.x ^= s.x >> 35
	s.x ^= s.x << 4
	return (s.x + s.v) ^ s.w
}

func (s *nr3) reseed(seed uint32) {
	s.v = NR3SeedV
	s.w = NR3SeedW
	s.u = uint64(seed) ^ s.v
	s.step()
	s.v = s.u
	s.step()
	s.w = s.v
	s.step()
}
