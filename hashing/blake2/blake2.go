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

// Package blake2 provides a BLAKE2b-256 backed hashing.Algorithm.
package blake2

import (
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/merklelight/merkle/hashing"
	"github.com/merklelight/merkle/hashing/registry"
)

// Name is the registry name of this algorithm.
const Name = "BLAKE2b-256"

func init() {
	registry.Sum256.Register(Name, func() hashing.Algorithm[hashing.Sum256] { return New() })
}

// Hasher is a streaming BLAKE2b-256 accumulator producing Sum256
// digests. Not safe for concurrent use.
type Hasher struct {
	hash.Hash
}

var _ hashing.Algorithm[hashing.Sum256] = (*Hasher)(nil)

// New returns a fresh unkeyed BLAKE2b-256 accumulator.
func New() *Hasher {
	h, err := blake2b.New256(nil)
	if err != nil {
		// New256 fails only for oversized keys; a corrupted primitive
		// cannot be recovered at this layer.
		panic(err)
	}
	return &Hasher{Hash: h}
}

// Digest returns the BLAKE2b-256 digest of everything written so far
// without disturbing the accumulator state.
func (h *Hasher) Digest() hashing.Sum256 {
	var d hashing.Sum256
	h.Sum(d[:0])
	return d
}
