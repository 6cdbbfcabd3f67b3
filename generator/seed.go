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
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	seedStart  = uint32(1777771)
	seedFactor = uint32(19)
)

// processStart anchors the clock component of NewSeed.
var processStart = time.Now()

// NewSeed derives a seed from the clock, a random UUID and the process id.
// Two calls in quick succession still differ because of the UUID bytes.
func NewSeed() uint32 {
	seed := seedStart
	seed = seedFactor*seed + uint32(time.Since(processStart).Nanoseconds())
	seed = seedFactor*seed + uint32(time.Now().UnixNano())

	id := uuid.New()
	seed = seedFactor*seed + binary.LittleEndian.Uint32(id[0:4])
	seed = seedFactor*seed + binary.LittleEndian.Uint32(id[8:12])

	seed = seedFactor*seed + uint32(os.Getpid())
	return seed
}
