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

// BVec3 is a boolean vector, the result of component-wise comparisons.
type BVec3 [3]bool

// SplatB3 returns a BVec3 with every component set to b.
func SplatB3(b bool) (v BVec3) {
	for i := range v {
		v[i] = b
	}
	return
}

// Component returns v[i], or ErrIndexOutOfRange.
func (v BVec3) Component(i int) (bool, error) {
	if i < 0 || i >= len(v) {
		return false, indexError(i, len(v))
	}
	return v[i], nil
}

// SetComponent sets v[i] = b, or returns ErrIndexOutOfRange.
func (v *BVec3) SetComponent(i int, b bool) error {
	if i < 0 || i >= len(v) {
		return indexError(i, len(v))
	}
	v[i] = b
	return nil
}

// Equals reports whether all components are equal.
func (v BVec3) Equals(o BVec3) bool { return v == o }

// Hash returns a hash of the components.
func (v BVec3) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, v) }

// All reports whether every component is true.
func (v BVec3) All() bool { return allTrue(v[:]) }

// Any reports whether at least one component is true.
func (v BVec3) Any() bool { return anyTrue(v[:]) }

// And returns v && o component-wise.
func (v BVec3) And(o BVec3) (r BVec3) {
	for i := range r {
		r[i] = v[i] && o[i]
	}
	return
}

// Or returns v || o component-wise.
func (v BVec3) Or(o BVec3) (r BVec3) {
	for i := range r {
		r[i] = v[i] || o[i]
	}
	return
}

// Xor returns v != o component-wise.
func (v BVec3) Xor(o BVec3) (r BVec3) {
	for i := range r {
		r[i] = v[i] != o[i]
	}
	return
}

// Not returns !v component-wise.
func (v BVec3) Not() (r BVec3) {
	for i := range r {
		r[i] = !v[i]
	}
	return
}

// String formats v with DefaultSeparator.
func (v BVec3) String() string { return v.Join(DefaultSeparator) }

// Join formats the components joined by sep.
func (v BVec3) Join(sep string) string { return joinScalars(v[:], sep, strconv.FormatBool) }

// MarshalText implements encoding.TextMarshaler.
func (v BVec3) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *BVec3) UnmarshalText(text []byte) error {
	p, err := ParseBVec3(string(text), DefaultSeparator)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseBVec3 parses components separated by sep with strconv.ParseBool.
func ParseBVec3(s, sep string) (v BVec3, err error) {
	err = parseScalars(v[:], s, sep, parseBool)
	return
}

// TryParseBVec3 is ParseBVec3 returning ok instead of an error.
func TryParseBVec3(s, sep string) (BVec3, bool) {
	v, err := ParseBVec3(s, sep)
	if err != nil {
		return BVec3{}, false
	}
	return v, true
}
