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

// BVec4 is a boolean vector, the result of component-wise comparisons.
type BVec4 [4]bool

// SplatB4 returns a BVec4 with every component set to b.
func SplatB4(b bool) (v BVec4) {
	for i := range v {
		v[i] = b
	}
	return
}

// Component returns v[i], or ErrIndexOutOfRange.
func (v BVec4) Component(i int) (bool, error) {
	if i < 0 || i >= len(v) {
		return false, indexError(i, len(v))
	}
	return v[i], nil
}

// SetComponent sets v[i] = b, or returns ErrIndexOutOfRange.
func (v *BVec4) SetComponent(i int, b bool) error {
	if i < 0 || i >= len(v) {
		return indexError(i, len(v))
	}
	v[i] = b
	return nil
}

// Equals reports whether all components are equal.
func (v BVec4) Equals(o BVec4) bool { return v == o }

// Hash returns a hash of the components.
func (v BVec4) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, v) }

// All reports whether every component is true.
func (v BVec4) All() bool { return allTrue(v[:]) }

// Any reports whether at least one component is true.
func (v BVec4) Any() bool { return anyTrue(v[:]) }

// And returns v && o component-wise.
func (v BVec4) And(o BVec4) (r BVec4) {
	for i := range r {
		r[i] = v[i] && o[i]
	}
	return
}

// Or returns v || o component-wise.
func (v BVec4) Or(o BVec4) (r BVec4) {
	for i := range r {
		r[i] = v[i] || o[i]
	}
	return
}

// Xor returns v != o component-wise.
func (v BVec4) Xor(o BVec4) (r BVec4) {
	for i := range r {
		r[i] = v[i] != o[i]
	}
	return
}

// Not returns !v component-wise.
func (v BVec4) Not() (r BVec4) {
	for i := range r {
		r[i] = !v[i]
	}
	return
}

// String formats v with DefaultSeparator.
func (v BVec4) String() string { return v.Join(DefaultSeparator) }

// Join formats the components joined by sep.
func (v BVec4) Join(sep string) string { return joinScalars(v[:], sep, strconv.FormatBool) }

// MarshalText implements encoding.TextMarshaler.
func (v BVec4) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *BVec4) UnmarshalText(text []byte) error {
	p, err := ParseBVec4(string(text), DefaultSeparator)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseBVec4 parses components separated by sep with strconv.ParseBool.
func ParseBVec4(s, sep string) (v BVec4, err error) {
	err = parseScalars(v[:], s, sep, parseBool)
	return
}

// TryParseBVec4 is ParseBVec4 returning ok instead of an error.
func TryParseBVec4(s, sep string) (BVec4, bool) {
	v, err := ParseBVec4(s, sep)
	if err != nil {
		return BVec4{}, false
	}
	return v, true
}
