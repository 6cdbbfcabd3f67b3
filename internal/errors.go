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

package internal

import (
	"errors"
)

// Error kinds shared by the generator and sample packages. Callers
// match them with errors.Is, since call sites wrap them with context.
var ErrRange = errors.New("value out of range")
var ErrInvalidParameter = errors.New("invalid distribution parameter")
var ErrUndefinedMoment = errors.New("moment is undefined for current parameters")
var ErrNullEngine = errors.New("generator cannot be nil")
var ErrUnknownKind = errors.New("unknown generator kind")
