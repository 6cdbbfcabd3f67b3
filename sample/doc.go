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

// Package sample implements probability distributions on top of the
// uniform generators of package generator.
//
// Every distribution holds a reference to a generator.Generator. Several
// distributions may share one generator; resetting any of them resets the
// shared generator, so all holders replay the same underlying stream.
// Sampling and validation go through the hooks of a Registry, which can be
// replaced to swap the numerical method of a distribution kind.
package sample
