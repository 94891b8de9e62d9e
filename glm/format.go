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
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultSeparator joins vector components in String and MarshalText.
const DefaultSeparator = ", "

func joinScalars[E any](xs []E, sep string, format func(E) string) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(format(x))
	}
	return sb.String()
}

// parseScalars splits s on sep and parses every part into dst. On failure
// dst is cleared.
func parseScalars[E any](dst []E, s, sep string, parse func(string) (E, error)) error {
	parts := strings.Split(s, sep)
	if len(parts) != len(dst) {
		return &ParseError{
			Input: s,
			Index: -1,
			Err:   fmt.Errorf("%w: got %d, want %d", ErrComponentCount, len(parts), len(dst)),
		}
	}
	for i, p := range parts {
		x, err := parse(p)
		if err != nil {
			clear(dst)
			return &ParseError{Input: s, Index: i, Err: err}
		}
		dst[i] = x
	}
	return nil
}

// formatScalar prints x in the shortest form that parses back to the same
// value.
func formatScalar[T Number](x T) string {
	switch {
	case isFloat[T]():
		return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
	case isSigned[T]():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

// parseScalar parses one component with the native parser of T. Surrounding
// white space is ignored.
func parseScalar[T Number](s string) (T, error) {
	s = strings.TrimSpace(s)
	bits := bitSize[T]()
	switch {
	case isFloat[T]():
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, err
		}
		return T(f), nil
	case isSigned[T]():
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, err
		}
		return T(i), nil
	default:
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, err
		}
		return T(u), nil
	}
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func verbFormatter[T Number](format string) func(T) string {
	return func(x T) string { return fmt.Sprintf(format, x) }
}

func localeFormatter[T Number](format string, tag language.Tag) func(T) string {
	p := message.NewPrinter(tag)
	if format == "" {
		return func(x T) string { return p.Sprint(number.Decimal(x)) }
	}
	return func(x T) string { return p.Sprintf(format, x) }
}

// localeParser returns a parser that strips the grouping separator of tag
// and accepts its decimal separator. Locales with non-ASCII digits are not
// supported and fail with the native parse error.
func localeParser[T Number](tag language.Tag) func(string) (T, error) {
	decimal, group := localeSeparators(tag)
	return func(s string) (T, error) {
		s = strings.TrimSpace(s)
		if group != "" {
			s = strings.ReplaceAll(s, group, "")
		}
		if decimal != "." {
			s = strings.ReplaceAll(s, decimal, ".")
		}
		return parseScalar[T](s)
	}
}

// localeSeparators discovers the decimal and grouping separators of tag by
// printing a probe number and reading the runs of non-digits.
func localeSeparators(tag language.Tag) (decimal, group string) {
	probe := message.NewPrinter(tag).Sprintf("%.1f", 12345.5)
	var seps []string
	start, digits := -1, false
	for i, r := range probe {
		if unicode.IsDigit(r) {
			if start >= 0 {
				seps = append(seps, probe[start:i])
				start = -1
			}
			digits = true
			continue
		}
		if start < 0 && digits {
			start = i
		}
	}
	switch len(seps) {
	case 0:
		return ".", ""
	case 1:
		return seps[0], ""
	default:
		return seps[len(seps)-1], seps[0]
	}
}
