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

// Package testonly contains test helpers for the hashing packages.
package testonly

import "bytes"

// Recorder is a hash.Hash that records the exact byte stream written
// to it. Tests use it to assert the canonical encoding a Hashable
// feeds into an accumulator, independent of any real hash function.
type Recorder struct {
	buf bytes.Buffer
}

// Write appends p to the recorded stream.
func (r *Recorder) Write(p []byte) (int, error) { return r.buf.Write(p) }

// Sum appends the recorded stream to b.
func (r *Recorder) Sum(b []byte) []byte { return append(b, r.buf.Bytes()...) }

// Reset discards the recorded stream.
func (r *Recorder) Reset() { r.buf.Reset() }

// Size returns the current length of the recorded stream.
func (r *Recorder) Size() int { return r.buf.Len() }

// BlockSize returns 1; the recorder has no block structure.
func (r *Recorder) BlockSize() int { return 1 }

// Bytes returns the recorded stream.
func (r *Recorder) Bytes() []byte { return r.buf.Bytes() }
