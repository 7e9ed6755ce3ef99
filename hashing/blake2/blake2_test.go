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

package blake2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merklelight/merkle/hashing/blake2"
	"github.com/merklelight/merkle/hashing/registry"
)

func TestGolden(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input string
		want  string
	}{
		{desc: "empty", input: "", want: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{desc: "abc", input: "abc", want: "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			h := blake2.New()
			h.Write([]byte(tc.input))
			if got := h.Digest().String(); got != tc.want {
				t.Errorf("Digest(%q): got %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestDigestIsPureRead(t *testing.T) {
	h := blake2.New()
	h.Write([]byte("abc"))
	require.Equal(t, h.Digest(), h.Digest())
}

func TestStreamContinuesAfterDigest(t *testing.T) {
	h := blake2.New()
	h.Write([]byte("ab"))
	h.Digest()
	h.Write([]byte("c"))

	want := blake2.New()
	want.Write([]byte("abc"))
	require.Equal(t, want.Digest(), h.Digest())
}

func TestResetRestoresInitialState(t *testing.T) {
	h := blake2.New()
	h.Write([]byte("garbage"))
	h.Reset()
	require.Equal(t, blake2.New().Digest(), h.Digest())
}

func TestRegistered(t *testing.T) {
	h, err := registry.Sum256.New(blake2.Name)
	require.NoError(t, err)
	h.Write([]byte("abc"))

	want := blake2.New()
	want.Write([]byte("abc"))
	require.Equal(t, want.Digest(), h.Digest())
}
