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

package hashing_test

import (
	"fmt"

	"github.com/merklelight/merkle/hashing"
	"github.com/merklelight/merkle/hashing/fnv1a"
)

// A tree builder drives one long-lived Algorithm instance: hash a
// leaf, read the digest, reset, repeat; then feed the concatenated
// child digests back in to form the parent.
func Example() {
	h := fnv1a.New()

	hashing.String("left leaf").HashInto(h)
	left := h.Digest()
	h.Reset()

	hashing.String("right leaf").HashInto(h)
	right := h.Digest()
	h.Reset()

	h.Write(left.AsBytes())
	h.Write(right.AsBytes())
	fmt.Println(h.Digest())
	// Output: a79c972f95c09f03
}
