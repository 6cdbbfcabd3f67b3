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

// Constants of the single word generator from Numerical Recipes, 3rd edition.
const (
	NR3Q1SeedU = uint64(2685821657736338717)
	NR3Q1SeedV = uint64(4101842887655102017)
)

// nr3Q1 is a 64-bit xorshift followed by a multiplication with an odd
// constant. Its period is 2^64-1.
type nr3Q1 struct {
	v uint64
}

// NewNR3Q1 returns an NR3Q1 generator seeded with seed.
func NewNR3Q1(seed uint32) *Engine {
	return newEngine(KindNR3Q1, newWord64(&nr3Q1{}), seed)
}

func (s *nr3Q1) step() uint64 {
	s.v ^= s.v >> 21
	s.v ^= s.v << 35
	s.v ^= s.v >> 4
	return s.v * NR3Q1SeedU
}

func (s *nr3Q1) reseed(seed uint32) {
	s.v = NR3Q1SeedV ^ uint64(seed)
	s.v = s.step()
}
