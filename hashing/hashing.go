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

// Package hashing defines the hashing contract that Merkle tree
// construction is built on: how a value feeds its bytes into a running
// hash computation, how a streaming algorithm exposes its accumulated
// digest, and how a digest exposes itself as raw bytes so that parent
// nodes can be built from the concatenation of their children.
//
// The contract deliberately says nothing about tree topology, proofs,
// or which hash function to use. Concrete algorithms live in the
// subpackages (sha2, blake2, xxh64, fnv1a) and any hash.Hash can be
// adapted the same way.
package hashing

import "hash"

// AsBytes exposes a value as a raw byte sequence.
//
// The returned slice must be stable: repeated calls on the same value
// yield byte-identical contents for the life of the value. The tree
// layer relies on this when it concatenates child digests into the
// input of a parent computation.
type AsBytes interface {
	AsBytes() []byte
}

// Digest constrains the output type of an Algorithm. A digest must be
// viewable as bytes (parent-node construction), totally ordered
// (deterministic sibling ordering) and duplicable (propagation up the
// tree and inclusion in proofs). All three are required; none may be
// relaxed.
type Digest[T any] interface {
	AsBytes

	// Compare returns -1, 0 or +1 ordering the receiver against other.
	// The order must be total and transitive.
	Compare(other T) int

	// Clone returns an independent copy of the digest.
	Clone() T
}

// Algorithm is a streaming hash engine producing digests of type T.
//
// It is the standard hash.Hash streaming primitive plus the one method
// tree construction needs on top of it: reading the accumulated digest
// without disturbing the stream. Write calls are applied in the exact
// order they are issued, Reset returns the instance to a state
// indistinguishable from a freshly constructed one, and Digest on an
// unwritten instance yields the algorithm's digest of empty input.
//
// An Algorithm instance is owned by a single computation at a time and
// is not safe for concurrent use. Callers hashing subtrees in parallel
// must allocate one instance per goroutine.
type Algorithm[T Digest[T]] interface {
	hash.Hash

	// Digest returns the digest of everything written so far. It is a
	// pure read of the current state: it does not advance or reset the
	// accumulator, and repeated calls with no intervening writes return
	// identical digests. The stream may be continued afterwards.
	Digest() T
}

// Hashable is implemented by values that can feed their content into a
// running hash computation.
//
// Implementations must be deterministic: values that are equal under
// the type's notion of equality must write identical byte streams, or
// every structure derived from the digests is silently corrupted. A
// composite type writes each constituent field, each via its own
// HashInto, in a fixed order that does not change across runs or
// processes. Field declaration order is the convention; cmd/hashablegen
// emits exactly that.
//
// HashInto must not fail: writes to a hash.Hash never return an error.
type Hashable interface {
	HashInto(state hash.Hash)
}

// HashSlice feeds every element of data into state, in slice order.
//
// This gives ordered collections a hashing behavior for free whenever
// the element type is Hashable. A type-specific batched variant may
// replace it only if it writes a byte-for-byte identical stream.
func HashSlice[T Hashable](data []T, state hash.Hash) {
	for _, piece := range data {
		piece.HashInto(state)
	}
}
