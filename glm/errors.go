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
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; functions wrap them
// with the offending input or index.
var (
	// ErrFormat is returned when text cannot be parsed as a vector.
	ErrFormat = errors.New("glm: invalid format")

	// ErrComponentCount is returned when the separator splits the input into
	// a number of parts different from the vector length. It always comes
	// together with ErrFormat.
	ErrComponentCount = errors.New("glm: wrong number of components")

	// ErrIndexOutOfRange is returned by the checked component accessors.
	ErrIndexOutOfRange = errors.New("glm: index out of range")

	// ErrSwizzle is returned for an unknown swizzle letter or a selector that
	// does not fit the source vector.
	ErrSwizzle = errors.New("glm: invalid swizzle")
)

// ParseError describes a failed vector parse.
//
// errors.Is(err, ErrFormat) holds for every ParseError; Err carries the cause
// (ErrComponentCount or the *strconv.NumError of the failing part).
type ParseError struct {
	Input string
	// Index of the failing component, or -1 when the count was wrong.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("glm: parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("glm: parse %q: component %d: %v", e.Input, e.Index, e.Err)
}

// Unwrap exposes both ErrFormat and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
}
