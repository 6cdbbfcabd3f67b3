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
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies a generator algorithm of the catalog.
type Kind int

const (
	KindXorShift128 Kind = iota
	KindNR3
	KindNR3Q1
	KindMT19937
	KindStandard
	KindSalsa20
	KindALF
)

var kindNames = map[Kind]string{
	KindXorShift128: "xorshift128",
	KindNR3:         "nr3",
	KindNR3Q1:       "nr3q1",
	KindMT19937:     "mt19937",
	KindStandard:    "standard",
	KindSalsa20:     "salsa20",
	KindALF:         "alf",
}

var constructors = map[Kind]func(seed uint32) *Engine{
	KindXorShift128: NewXorShift128,
	KindNR3:         NewNR3,
	KindNR3Q1:       NewNR3Q1,
	KindMT19937:     NewMT19937,
	KindStandard:    NewStandard,
	KindSalsa20:     NewSalsa20,
	KindALF:         NewALF,
}

// Kinds lists every kind of the catalog in declaration order.
func Kinds() []Kind {
	return []Kind{KindXorShift128, KindNR3, KindNR3Q1, KindMT19937, KindStandard, KindSalsa20, KindALF}
}

// String returns the lowercase catalog name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind returns the kind with the given case-insensitive name.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// New returns a generator of the given kind seeded with seed.
func New(kind Kind, seed uint32) (*Engine, error) {
	c, ok := constructors[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
	}
	return c(seed), nil
}

// NewDefault returns an XorShift128 generator with a seed from NewSeed.
func NewDefault() *Engine {
	return NewXorShift128(NewSeed())
}
