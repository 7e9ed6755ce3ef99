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

// Package registry maps algorithm names to factories producing fresh
// Algorithm instances, so callers can select a hash function by name
// without linking against a specific implementation.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/merklelight/merkle/hashing"
)

// A Registry holds named factories for one digest type. Registration
// normally happens from package init funcs of the algorithm packages;
// lookups may then happen from any goroutine.
type Registry[T hashing.Digest[T]] struct {
	mu        sync.RWMutex
	factories map[string]func() hashing.Algorithm[T]
}

// Default registries for the digest types the algorithm subpackages
// produce. Importing an algorithm package for side effects populates
// the matching registry:
//
//	import _ "github.com/merklelight/merkle/hashing/sha2"
var (
	Sum256 = New[hashing.Sum256]()
	Sum64  = New[hashing.Sum64]()
)

// New returns an empty registry for digest type T.
func New[T hashing.Digest[T]]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]func() hashing.Algorithm[T])}
}

// Register adds a factory under name. It panics if the name is empty
// or already taken: both indicate a programming error at init time,
// not a runtime condition.
func (r *Registry[T]) Register(name string, f func() hashing.Algorithm[T]) {
	if name == "" {
		panic("registry: Register with empty algorithm name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories[name] != nil {
		panic(fmt.Sprintf("registry: %q already registered", name))
	}
	r.factories[name] = f
}

// New returns a fresh Algorithm instance for the named algorithm.
func (r *Registry[T]) New(name string) (hashing.Algorithm[T], error) {
	r.mu.RLock()
	f := r.factories[name]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("registry: %q is not a registered algorithm", name)
	}
	return f(), nil
}

// Names returns the registered algorithm names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
