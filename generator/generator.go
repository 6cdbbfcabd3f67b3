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

	"github.com/fentec-project/prand/internal"
	"github.com/pkg/errors"
)

// ErrRange is returned when the bounds passed to a ranged draw are invalid.
var ErrRange = internal.ErrRange

// ErrUnknownKind is returned by ParseKind and New for names and kinds
// outside the catalog.
var ErrUnknownKind = internal.ErrUnknownKind

// Generator is a deterministic source of uniform integers and doubles.
// Implementations are not safe for concurrent use; callers sharing one
// generator between goroutines must serialize access themselves.
type Generator interface {
	// Seed returns the seed the generator was last reset with.
	Seed() uint32
	// CanReset reports whether Reset and ResetSeed can succeed.
	CanReset() bool

	// Next returns an int in [0, math.MaxInt32).
	Next() int
	// NextMax returns an int in [0, max).
	NextMax(max int) (int, error)
	// NextRange returns an int in [min, max).
	NextRange(min, max int) (int, error)
	// NextInclusiveMaxValue returns an int in [0, math.MaxInt32].
	NextInclusiveMaxValue() int

	// NextDouble returns a float64 in [0, 1).
	NextDouble() float64
	// NextDoubleMax returns a float64 in [0, max).
	NextDoubleMax(max float64) (float64, error)
	// NextDoubleRange returns a float64 in [min, max).
	NextDoubleRange(min, max float64) (float64, error)

	// NextUInt returns a uint32 in [0, math.MaxUint32).
	NextUInt() uint32
	// NextUIntMax returns a uint32 in [0, max).
	NextUIntMax(max uint32) uint32
	// NextUIntRange returns a uint32 in [min, max).
	NextUIntRange(min, max uint32) (uint32, error)
	// NextUIntInclusiveMaxValue returns a uint32 in [0, math.MaxUint32].
	NextUIntInclusiveMaxValue() uint32
	// NextULong returns a full 64-bit word.
	NextULong() uint64

	NextBoolean() bool
	NextBytes(buf []byte)

	// Reset reinitializes the generator with its current seed.
	Reset() bool
	// ResetSeed reinitializes the generator with seed. It returns false,
	// leaving the state untouched, when the generator cannot be reset.
	ResetSeed(seed uint32) bool
}

// source is the recurrence an Engine delegates to.
type source interface {
	nextDouble() float64
	nextInclusiveMaxValue() int
	nextUIntInclusiveMaxValue() uint32
	nextULong() uint64
	reseed(seed uint32)
}

// boolBits is the number of random bits buffered by NextBoolean.
const boolBits = 31

// Engine implements Generator on top of one of the catalog recurrences.
type Engine struct {
	kind     Kind
	src      source
	seed     uint32
	canReset bool

	// bits left over from the last refill of NextBoolean
	bitBuffer uint32
	bitCount  int
}

func newEngine(kind Kind, src source, seed uint32) *Engine {
	e := &Engine{
		kind:     kind,
		src:      src,
		canReset: true,
	}
	e.ResetSeed(seed)
	return e
}

// Kind returns the catalog entry e was created from.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Seed returns the seed e was last reset with.
func (e *Engine) Seed() uint32 {
	return e.seed
}

// CanReset reports whether e can be reseeded.
func (e *Engine) CanReset() bool {
	return e.canReset
}

// Next returns an int in [0, math.MaxInt32), redrawing math.MaxInt32.
func (e *Engine) Next() int {
	for {
		if r := e.src.nextInclusiveMaxValue(); r != math.MaxInt32 {
			return r
		}
	}
}

// NextMax returns an int in [0, max). It fails for negative max.
func (e *Engine) NextMax(max int) (int, error) {
	if max < 0 {
		return 0, errors.Wrapf(ErrRange, "max value %d is negative", max)
	}
	return int(e.src.nextDouble() * float64(max)), nil
}

// NextRange returns an int in [min, max).
func (e *Engine) NextRange(min, max int) (int, error) {
	if max < min {
		return 0, errors.Wrapf(ErrRange, "min value %d is greater than max value %d", min, max)
	}
	return min + int(e.src.nextDouble()*(float64(max)-float64(min))), nil
}

// NextInclusiveMaxValue returns an int in [0, math.MaxInt32].
func (e *Engine) NextInclusiveMaxValue() int {
	return e.src.nextInclusiveMaxValue()
}

// NextDouble returns a float64 in [0, 1).
func (e *Engine) NextDouble() float64 {
	return e.src.nextDouble()
}

// NextDoubleMax returns a float64 in [0, max).
func (e *Engine) NextDoubleMax(max float64) (float64, error) {
	if !(max >= 0) || math.IsInf(max, 1) {
		return 0, errors.Wrapf(ErrRange, "max value %v must be finite and non-negative", max)
	}
	return e.src.nextDouble() * max, nil
}

// NextDoubleRange returns a float64 in [min, max).
func (e *Engine) NextDoubleRange(min, max float64) (float64, error) {
	if !(max >= min) {
		return 0, errors.Wrapf(ErrRange, "min value %v is greater than max value %v", min, max)
	}
	width := max - min
	if math.IsInf(width, 1) || math.IsNaN(width) {
		return 0, errors.Wrapf(ErrRange, "range [%v, %v) is too wide", min, max)
	}
	return min + e.src.nextDouble()*width, nil
}

// NextUInt returns a uint32 in [0, math.MaxUint32).
func (e *Engine) NextUInt() uint32 {
	for {
		if r := e.src.nextUIntInclusiveMaxValue(); r != math.MaxUint32 {
			return r
		}
	}
}

// NextUIntMax returns a uint32 in [0, max).
func (e *Engine) NextUIntMax(max uint32) uint32 {
	return uint32(e.src.nextDouble() * float64(max))
}

// NextUIntRange returns a uint32 in [min, max).
func (e *Engine) NextUIntRange(min, max uint32) (uint32, error) {
	if max < min {
		return 0, errors.Wrapf(ErrRange, "min value %d is greater than max value %d", min, max)
	}
	return min + uint32(e.src.nextDouble()*float64(max-min)), nil
}

// NextUIntInclusiveMaxValue returns a uint32 in [0, math.MaxUint32].
func (e *Engine) NextUIntInclusiveMaxValue() uint32 {
	return e.src.nextUIntInclusiveMaxValue()
}

// NextULong returns a full 64-bit word.
func (e *Engine) NextULong() uint64 {
	return e.src.nextULong()
}

// NextBoolean returns one bit of a 31-bit buffer, refilled with a single
// call to Next every 31 draws.
func (e *Engine) NextBoolean() bool {
	if e.bitCount == 0 {
		e.bitBuffer = uint32(e.Next())
		e.bitCount = boolBits - 1
		return e.bitBuffer&1 == 1
	}
	e.bitCount--
	e.bitBuffer >>= 1
	return e.bitBuffer&1 == 1
}

// NextBytes fills buf four bytes at a time, least significant byte first.
func (e *Engine) NextBytes(buf []byte) {
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		u := e.src.nextUIntInclusiveMaxValue()
		buf[i] = byte(u)
		buf[i+1] = byte(u >> 8)
		buf[i+2] = byte(u >> 16)
		buf[i+3] = byte(u >> 24)
	}
	if i < len(buf) {
		u := e.src.nextUIntInclusiveMaxValue()
		for ; i < len(buf); i++ {
			buf[i] = byte(u)
			u >>= 8
		}
	}
}

// Reset reseeds e with its current seed.
func (e *Engine) Reset() bool {
	return e.ResetSeed(e.seed)
}

// ResetSeed reseeds e with seed, or returns false if e cannot be reset.
func (e *Engine) ResetSeed(seed uint32) bool {
	if !e.canReset {
		return false
	}
	e.seed = seed
	e.bitBuffer = 0
	e.bitCount = 0
	e.src.reseed(seed)
	return true
}
