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
	"encoding/binary"
	"hash"
)

// Adapter types giving the basic Go types a canonical Hashable
// encoding. Integers are written fixed-width big-endian; String and
// Bytes are written as a big-endian uint64 length followed by the raw
// bytes, so that adjacent variable-length fields cannot collide.
//
// Composite types hash each field through these adapters in
// declaration order:
//
//	func (p person) HashInto(state hash.Hash) {
//		hashing.Uint32(p.ID).HashInto(state)
//		hashing.String(p.Name).HashInto(state)
//		hashing.Uint64(p.Phone).HashInto(state)
//	}
type (
	Bool   bool
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	String string
	Bytes  []byte
)

// HashInto writes a single byte, 1 for true and 0 for false.
func (v Bool) HashInto(state hash.Hash) {
	b := byte(0)
	if v {
		b = 1
	}
	state.Write([]byte{b})
}

// HashInto writes the value as one byte.
func (v Uint8) HashInto(state hash.Hash) {
	state.Write([]byte{byte(v)})
}

// HashInto writes the value as 2 big-endian bytes.
func (v Uint16) HashInto(state hash.Hash) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	state.Write(buf[:])
}

// HashInto writes the value as 4 big-endian bytes.
func (v Uint32) HashInto(state hash.Hash) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	state.Write(buf[:])
}

// HashInto writes the value as 8 big-endian bytes.
func (v Uint64) HashInto(state hash.Hash) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	state.Write(buf[:])
}

// HashInto writes the string's length as 8 big-endian bytes followed
// by its raw bytes.
func (v String) HashInto(state hash.Hash) {
	Uint64(len(v)).HashInto(state)
	state.Write([]byte(v))
}

// HashInto writes the slice's length as 8 big-endian bytes followed by
// its raw bytes.
func (v Bytes) HashInto(state hash.Hash) {
	Uint64(len(v)).HashInto(state)
	state.Write(v)
}
