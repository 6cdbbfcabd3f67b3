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

// Seed offsets taken from Marsaglia's xor128. The state x, y must not be all
// zero, which the constant offsets guarantee for any seed.
const (
	XorShift128SeedX = uint64(521288629) << 32
	XorShift128SeedY = uint64(362436069)
)

// xorShift128 has a period of 2^128-1.
type xorShift128 struct {
	x, y uint64
}

// NewXorShift128 returns an XorShift128 generator seeded with seed.
func NewXorShift128(seed uint32) *Engine {
	return newEngine(KindXorShift128, newWord64(&xorShift128{}), seed)
}

func (s *xorShift128) step() uint64 {
	tx, ty := s.x, s.y
	s.x = ty
	tx ^= tx << 23
	tx ^= tx >> 17
	tx ^= ty ^ (ty >> 26)
	s.y = tx
	return tx + ty
}

func (s *xorShift128) reseed(seed uint32) {
	s.x = XorShift128SeedX + uint64(seed)
	s.y = XorShift128SeedY * (uint64(seed) << 32)
	// the first output is discarded
	s.step()
}
