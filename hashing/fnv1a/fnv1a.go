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

// Package fnv1a provides a hashing.Algorithm backed by the 64-bit
// FNV-1a function from the standard library.
package fnv1a

import (
	"hash"
	"hash/fnv"

	"github.com/merklelight/merkle/hashing"
	"github.com/merklelight/merkle/hashing/registry"
)

// Name is the registry name of this algorithm.
const Name = "FNV-1a"

func init() {
	registry.Sum64.Register(Name, func() hashing.Algorithm[hashing.Sum64] { return New() })
}

// Hasher is a streaming FNV-1a 64 accumulator producing Sum64 digests.
// Not safe for concurrent use.
type Hasher struct {
	hash.Hash64
}

var _ hashing.Algorithm[hashing.Sum64] = (*Hasher)(nil)

// New returns a fresh FNV-1a 64 accumulator.
func New() *Hasher {
	return &Hasher{Hash64: fnv.New64a()}
}

// Digest returns the FNV-1a digest of everything written so far, in
// big-endian byte order, without disturbing the accumulator state.
func (h *Hasher) Digest() hashing.Sum64 {
	return hashing.NewSum64(h.Sum64())
}
