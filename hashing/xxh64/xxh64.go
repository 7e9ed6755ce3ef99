// Copyright 2026 Merkle Light Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xxh64 provides a hashing.Algorithm backed by the seeded
// non-cryptographic XXH64 function. Suitable for content-addressed
// structures that need speed and determinism rather than collision
// resistance against an adversary.
package xxh64

import (
	"github.com/OneOfOne/xxhash"

	"github.com/merklelight/merkle/hashing"
	"github.com/merklelight/merkle/hashing/registry"
)

// Name is the registry name of this algorithm, with seed 0.
const Name = "XXH64"

func init() {
	registry.Sum64.Register(Name, func() hashing.Algorithm[hashing.Sum64] { return New() })
}

// Hasher is a streaming XXH64 accumulator producing Sum64 digests.
// Not safe for concurrent use.
type Hasher struct {
	*xxhash.XXHash64
}

var _ hashing.Algorithm[hashing.Sum64] = (*Hasher)(nil)

// New returns a fresh XXH64 accumulator with seed 0.
func New() *Hasher {
	return &Hasher{XXHash64: xxhash.New64()}
}

// NewSeeded returns a fresh XXH64 accumulator whose initial state is
// derived from seed. Reset returns the instance to that seeded initial
// state, not to the seed-0 state.
func NewSeeded(seed uint64) *Hasher {
	return &Hasher{XXHash64: xxhash.NewS64(seed)}
}

// Digest returns the XXH64 digest of everything written so far, in
// big-endian byte order, without disturbing the accumulator state.
func (h *Hasher) Digest() hashing.Sum64 {
	return hashing.NewSum64(h.Sum64())
}
