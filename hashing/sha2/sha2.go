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

// Package sha2 provides a SHA-256 backed hashing.Algorithm.
package sha2

import (
	"crypto/sha256"
	"hash"

	"github.com/merklelight/merkle/hashing"
	"github.com/merklelight/merkle/hashing/registry"
)

// Name is the registry name of this algorithm.
const Name = "SHA2-256"

func init() {
	registry.Sum256.Register(Name, func() hashing.Algorithm[hashing.Sum256] { return New() })
}

// Hasher is a streaming SHA-256 accumulator producing Sum256 digests.
// Not safe for concurrent use.
type Hasher struct {
	hash.Hash
}

var _ hashing.Algorithm[hashing.Sum256] = (*Hasher)(nil)

// New returns a fresh SHA-256 accumulator.
func New() *Hasher {
	return &Hasher{Hash: sha256.New()}
}

// Digest returns the SHA-256 digest of everything written so far. The
// accumulator state is left untouched and the stream may be continued.
func (h *Hasher) Digest() hashing.Sum256 {
	var d hashing.Sum256
	h.Sum(d[:0])
	return d
}
