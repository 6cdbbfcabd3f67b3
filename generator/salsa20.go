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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// salsaBlocks is the number of 64-byte keystream blocks produced per refill.
const salsaBlocks = 8

// salsaKeyStep spreads the seed over the eight words of the key.
const salsaKeyStep = uint32(0x9E3779B9)

// salsa20Stream reads 64-bit words from a Salsa20 keystream. The key is
// derived from the seed and the nonce counts refills, so the stream is
// fully determined by the seed.
type salsa20Stream struct {
	key   [32]byte
	nonce uint64
	buf   [64 * salsaBlocks]byte
	pos   int
}

// NewSalsa20 returns a generator reading the Salsa20 keystream keyed by
// seed. It is slower than the other engines and, used like this, still
// not suitable for cryptographic purposes.
func NewSalsa20(seed uint32) *Engine {
	return newEngine(KindSalsa20, newWord64(&salsa20Stream{}), seed)
}

func (s *salsa20Stream) step() uint64 {
	if s.pos == len(s.buf) {
		s.refill()
	}
	w := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return w
}

func (s *salsa20Stream) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.nonce)
	for i := range s.buf {
		s.buf[i] = 0
	}
	salsa20.XORKeyStream(s.buf[:], s.buf[:], nonce[:], &s.key)
	s.nonce++
	s.pos = 0
}

func (s *salsa20Stream) reseed(seed uint32) {
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(s.key[4*i:], seed^(uint32(i)*salsaKeyStep))
	}
	s.nonce = 0
	s.refill()
}
