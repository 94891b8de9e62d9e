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
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Swizzles read with repetition allowed (v.Swizzle("xxy")) and write back
// only through distinct components: SetSwizzle("zx", a, b) sets z=a, x=b,
// while "xx" is rejected. The fixed setters (SetXY, SetXZ, ...) cover the
// in-order subsets without a selector.

// swizzleSets are the GLSL letter sets. A selector must stay within one.
var swizzleSets = [...]string{"xyzw", "rgba", "stpq"}

// ParseSwizzle converts a selector of one to four letters into components.
// Letters come from exactly one of the sets xyzw, rgba or stpq.
func ParseSwizzle(selector string) ([]Component, error) {
	if len(selector) == 0 || len(selector) > 4 {
		return nil, fmt.Errorf("%w: %q must have 1 to 4 letters", ErrSwizzle, selector)
	}
	for _, set := range swizzleSets {
		if !strings.ContainsRune(set, rune(selector[0])) {
			continue
		}
		comps := make([]Component, len(selector))
		for i, r := range selector {
			idx := strings.IndexRune(set, r)
			if idx < 0 {
				return nil, fmt.Errorf("%w: %q mixes letter sets", ErrSwizzle, selector)
			}
			comps[i] = Component(idx)
		}
		return comps, nil
	}
	return nil, fmt.Errorf("%w: unknown letter %q", ErrSwizzle, selector[0])
}

func swizzle[T Number](src []T, selector string) ([]T, error) {
	comps, err := ParseSwizzle(selector)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(comps))
	for i, c := range comps {
		if int(c) >= len(src) {
			return nil, fmt.Errorf("%w: %q on a %d-component vector", ErrSwizzle, selector, len(src))
		}
		out[i] = src[c]
	}
	return out, nil
}

func setSwizzle[T Number](dst []T, selector string, values []T) error {
	comps, err := ParseSwizzle(selector)
	if err != nil {
		return err
	}
	if len(lo.Uniq(comps)) != len(comps) {
		return fmt.Errorf("%w: %q repeats a component", ErrSwizzle, selector)
	}
	if len(values) != len(comps) {
		return fmt.Errorf("%w: %q takes %d values, got %d", ErrSwizzle, selector, len(comps), len(values))
	}
	for _, c := range comps {
		if int(c) >= len(dst) {
			return fmt.Errorf("%w: %q on a %d-component vector", ErrSwizzle, selector, len(dst))
		}
	}
	for i, c := range comps {
		dst[c] = values[i]
	}
	return nil
}

// SetSwizzle assigns values to the components named by selector, which must
// not repeat a component.
func (v *Vec2[T]) SetSwizzle(selector string, values ...T) error {
	return setSwizzle(v[:], selector, values)
}

// SetSwizzle assigns values to the components named by selector, which must
// not repeat a component.
func (v *Vec3[T]) SetSwizzle(selector string, values ...T) error {
	return setSwizzle(v[:], selector, values)
}

// SetSwizzle assigns values to the components named by selector, which must
// not repeat a component.
func (v *Vec4[T]) SetSwizzle(selector string, values ...T) error {
	return setSwizzle(v[:], selector, values)
}
