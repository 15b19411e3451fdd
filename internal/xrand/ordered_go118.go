// Copyright 2025 samber.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://github.com/flowcore/rx/blob/main/licenses/LICENSE.apache.md
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xrand

import "math/rand"

// Shuffle is a wrapper around rand.Shuffle.
func Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// IntN returns a pseudo-random int in [0, n). It panics if n <= 0.
func IntN(n int) int {
	return rand.Intn(n)
}

// Int64 returns a non-negative pseudo-random int64.
func Int64() int64 {
	return rand.Int63()
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func Float64() float64 {
	return rand.Float64()
}
