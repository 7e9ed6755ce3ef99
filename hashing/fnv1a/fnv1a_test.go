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

package fnv1a_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merklelight/merkle/hashing/fnv1a"
	"github.com/merklelight/merkle/hashing/registry"
)

func TestGolden(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input string
		want  uint64
	}{
		// The empty digest is the FNV-1a 64 offset basis.
		{desc: "empty", input: "", want: 0xcbf29ce484222325},
		{desc: "abc", input: "abc", want: 0xe71fa2190541574b},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			h := fnv1a.New()
			h.Write([]byte(tc.input))
			if got := h.Digest().Uint64(); got != tc.want {
				t.Errorf("Digest(%q): got %#x, want %#x", tc.input, got, tc.want)
			}
		})
	}
}

func TestDigestIsPureRead(t *testing.T) {
	h := fnv1a.New()
	h.Write([]byte("abc"))
	require.Equal(t, h.Digest(), h.Digest())
}

func TestStreamContinuesAfterDigest(t *testing.T) {
	h := fnv1a.New()
	h.Write([]byte("ab"))
	h.Digest()
	h.Write([]byte("c"))
	require.Equal(t, uint64(0xe71fa2190541574b), h.Digest().Uint64())
}

func TestResetRestoresInitialState(t *testing.T) {
	h := fnv1a.New()
	h.Write([]byte("garbage"))
	h.Reset()
	require.Equal(t, fnv1a.New().Digest(), h.Digest())
}

func TestRegistered(t *testing.T) {
	h, err := registry.Sum64.New(fnv1a.Name)
	require.NoError(t, err)
	h.Write([]byte("abc"))
	require.Equal(t, uint64(0xe71fa2190541574b), h.Digest().Uint64())
}
