// Copyright 2025 go-glm Authors
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

package glm

import (
	"hash/maphash"
	"strconv"
)

// BVec2 is a boolean vector, the result of component-wise comparisons.
type BVec2 [2]bool

// SplatB2 returns a BVec2 with every component set to b.
func SplatB2(b bool) (v BVec2) {
	for i := range v {
		v[i] = b
	}
	return
}

// Component returns v[i], or ErrIndexOutOfRange.
func (v BVec2) Component(i int) (bool, error) {
	if i < 0 || i >= len(v) {
		return false, indexError(i, len(v))
	}
	return v[i], nil
}

// SetComponent sets v[i] = b, or returns ErrIndexOutOfRange.
func (v *BVec2) SetComponent(i int, b bool) error {
	if i < 0 || i >= len(v) {
		return indexError(i, len(v))
	}
	v[i] = b
	return nil
}

// Equals reports whether all components are equal.
func (v BVec2) Equals(o BVec2) bool { return v == o }

// Hash returns a hash of the components.
func (v BVec2) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, v) }

// All reports whether every component is true.
func (v BVec2) All() bool { return allTrue(v[:]) }

// Any reports whether at least one component is true.
func (v BVec2) Any() bool { return anyTrue(v[:]) }

// And returns v && o component-wise.
func (v BVec2) And(o BVec2) (r BVec2) {
	for i := range r {
		r[i] = v[i] && o[i]
	}
	return
}

// Or returns v || o component-wise.
func (v BVec2) Or(o BVec2) (r BVec2) {
	for i := range r {
		r[i] = v[i] || o[i]
	}
	return
}

// Xor returns v != o component-wise.
func (v BVec2) Xor(o BVec2) (r BVec2) {
	for i := range r {
		r[i] = v[i] != o[i]
	}
	return
}

// Not returns !v component-wise.
func (v BVec2) Not() (r BVec2) {
	for i := range r {
		r[i] = !v[i]
	}
	return
}

// String formats v with DefaultSeparator.
func (v BVec2) String() string { return v.Join(DefaultSeparator) }

// Join formats the components joined by sep.
func (v BVec2) Join(sep string) string { return joinScalars(v[:], sep, strconv.FormatBool) }

// MarshalText implements encoding.TextMarshaler.
func (v BVec2) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *BVec2) UnmarshalText(text []byte) error {
	p, err := ParseBVec2(string(text), DefaultSeparator)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseBVec2 parses components separated by sep with strconv.ParseBool.
func ParseBVec2(s, sep string) (v BVec2, err error) {
	err = parseScalars(v[:], s, sep, parseBool)
	return
}

// TryParseBVec2 is ParseBVec2 returning ok instead of an error.
func TryParseBVec2(s, sep string) (BVec2, bool) {
	v, err := ParseBVec2(s, sep)
	if err != nil {
		return BVec2{}, false
	}
	return v, true
}
