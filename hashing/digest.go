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

package hashing

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
)

// Sum64 is an 8-byte digest produced by 64-bit hash functions, stored
// big-endian so that the byte view and the numeric value sort the same
// way.
type Sum64 [8]byte

// NewSum64 returns the big-endian digest of a 64-bit hash value.
func NewSum64(v uint64) Sum64 {
	var s Sum64
	binary.BigEndian.PutUint64(s[:], v)
	return s
}

// AsBytes returns the digest as a byte sequence.
func (s Sum64) AsBytes() []byte { return s[:] }

// Compare orders digests lexicographically by their byte view.
func (s Sum64) Compare(other Sum64) int { return bytes.Compare(s[:], other[:]) }

// Clone returns a copy of the digest.
func (s Sum64) Clone() Sum64 { return s }

// Uint64 returns the digest as its numeric hash value.
func (s Sum64) Uint64() uint64 { return binary.BigEndian.Uint64(s[:]) }

func (s Sum64) String() string { return hex.EncodeToString(s[:]) }

// Sum256 is a 32-byte digest, the output size of SHA-256, BLAKE2b-256
// and most other tree hash functions in practice.
type Sum256 [32]byte

// AsBytes returns the digest as a byte sequence.
func (s Sum256) AsBytes() []byte { return s[:] }

// Compare orders digests lexicographically by their byte view.
func (s Sum256) Compare(other Sum256) int { return bytes.Compare(s[:], other[:]) }

// Clone returns a copy of the digest.
func (s Sum256) Clone() Sum256 { return s }

func (s Sum256) String() string { return hex.EncodeToString(s[:]) }
