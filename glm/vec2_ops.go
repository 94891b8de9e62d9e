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

	"golang.org/x/text/language"
)

// Component returns v[i], or ErrIndexOutOfRange.
func (v Vec2[T]) Component(i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, indexError(i, len(v))
	}
	return v[i], nil
}

// SetComponent sets v[i] = x, or returns ErrIndexOutOfRange.
func (v *Vec2[T]) SetComponent(i int, x T) error {
	if i < 0 || i >= len(v) {
		return indexError(i, len(v))
	}
	v[i] = x
	return nil
}

// Equals reports whether all components are equal. It is the same as v == o.
func (v Vec2[T]) Equals(o Vec2[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec2[T]) ApproxEqual(o Vec2[T], eps T) bool { return approxEqual(v[:], o[:], eps) }

// Hash returns a hash of the components.
func (v Vec2[T]) Hash(seed maphash.Seed) uint64 { return maphash.Comparable(seed, v) }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) (r Vec2[T]) {
	addTo(r[:], v[:], o[:])
	return
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) (r Vec2[T]) {
	subTo(r[:], v[:], o[:])
	return
}

// Mul returns the component-wise product v * o.
func (v Vec2[T]) Mul(o Vec2[T]) (r Vec2[T]) {
	mulTo(r[:], v[:], o[:])
	return
}

// Div returns the component-wise quotient v / o.
func (v Vec2[T]) Div(o Vec2[T]) (r Vec2[T]) {
	divTo(r[:], v[:], o[:])
	return
}

// Mod returns the component-wise remainder v % o.
func (v Vec2[T]) Mod(o Vec2[T]) (r Vec2[T]) {
	modTo(r[:], v[:], o[:])
	return
}

// AddS returns v + s for every component.
func (v Vec2[T]) AddS(s T) (r Vec2[T]) {
	addSTo(r[:], v[:], s)
	return
}

// SubS returns v - s for every component.
func (v Vec2[T]) SubS(s T) (r Vec2[T]) {
	subSTo(r[:], v[:], s)
	return
}

// MulS returns v * s for every component.
func (v Vec2[T]) MulS(s T) (r Vec2[T]) {
	mulSTo(r[:], v[:], s)
	return
}

// DivS returns v / s for every component.
func (v Vec2[T]) DivS(s T) (r Vec2[T]) {
	divSTo(r[:], v[:], s)
	return
}

// ModS returns v % s for every component.
func (v Vec2[T]) ModS(s T) (r Vec2[T]) {
	modSTo(r[:], v[:], s)
	return
}

// Neg returns -v.
func (v Vec2[T]) Neg() (r Vec2[T]) {
	negTo(r[:], v[:])
	return
}

// LessThan returns v < o component-wise.
func (v Vec2[T]) LessThan(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], lt[T])
	return
}

// LessThanEqual returns v <= o component-wise.
func (v Vec2[T]) LessThanEqual(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], le[T])
	return
}

// GreaterThan returns v > o component-wise.
func (v Vec2[T]) GreaterThan(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], gt[T])
	return
}

// GreaterThanEqual returns v >= o component-wise.
func (v Vec2[T]) GreaterThanEqual(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], ge[T])
	return
}

// Equal returns v == o component-wise. See Equals for the single-bool form.
func (v Vec2[T]) Equal(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], eq[T])
	return
}

// NotEqual returns v != o component-wise.
func (v Vec2[T]) NotEqual(o Vec2[T]) (r BVec2) {
	compareTo(r[:], v[:], o[:], ne[T])
	return
}

// LessThanS returns v < s component-wise.
func (v Vec2[T]) LessThanS(s T) (r BVec2) {
	compareSTo(r[:], v[:], s, lt[T])
	return
}

// LessThanEqualS returns v <= s component-wise.
func (v Vec2[T]) LessThanEqualS(s T) (r BVec2) {
	compareSTo(r[:], v[:], s, le[T])
	return
}

// GreaterThanS returns v > s component-wise.
func (v Vec2[T]) GreaterThanS(s T) (r BVec2) {
	compareSTo(r[:], v[:], s, gt[T])
	return
}

// GreaterThanEqualS returns v >= s component-wise.
func (v Vec2[T]) GreaterThanEqualS(s T) (r BVec2) {
	compareSTo(r[:], v[:], s, ge[T])
	return
}

// Bool returns v != 0 component-wise.
func (v Vec2[T]) Bool() (r BVec2) {
	for i := range r {
		r[i] = toBool(v[i])
	}
	return
}

// Dot returns the sum of the pairwise products.
func (v Vec2[T]) Dot(o Vec2[T]) T { return dot(v[:], o[:]) }

// Length returns the Euclidean norm. It is computed in float32 precision for
// kinds of 32 bits or less and in float64 otherwise.
func (v Vec2[T]) Length() float64 { return length(v[:]) }

// Norm is Length.
func (v Vec2[T]) Norm() float64 { return length(v[:]) }

// Norm2 is Length.
func (v Vec2[T]) Norm2() float64 { return length(v[:]) }

// LengthSqr returns Dot(v, v).
func (v Vec2[T]) LengthSqr() T { return dot(v[:], v[:]) }

// Norm1 returns the sum of absolute values.
func (v Vec2[T]) Norm1() T { return sumAbs(v[:]) }

// NormMax returns the largest absolute component.
func (v Vec2[T]) NormMax() T { return maxAbs(v[:]) }

// NormP returns (Σ|v[i]|^p)^(1/p).
func (v Vec2[T]) NormP(p float64) float64 { return normP(v[:], p) }

// Distance returns the length of v - o.
func (v Vec2[T]) Distance(o Vec2[T]) float64 { return v.Sub(o).Length() }

// DistanceSqr returns the squared length of v - o.
func (v Vec2[T]) DistanceSqr(o Vec2[T]) T { return v.Sub(o).LengthSqr() }

// Sum returns the sum of the components.
func (v Vec2[T]) Sum() (s T) {
	for _, x := range v {
		s += x
	}
	return
}

// MinElement returns the smallest component.
func (v Vec2[T]) MinElement() T {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

// MaxElement returns the largest component.
func (v Vec2[T]) MaxElement() T {
	m := v[0]
	for _, x := range v[1:] {
		m = max(m, x)
	}
	return m
}

// Normalized returns v / Length(). A zero vector yields NaN components for
// floating kinds.
func (v Vec2[T]) Normalized() Vec2[T] { return v.DivS(T(v.Length())) }

// NormalizedSafe is Normalized, except that the zero vector is returned
// unchanged. Only exact zero is special-cased.
func (v Vec2[T]) NormalizedSafe() Vec2[T] {
	if v == (Vec2[T]{}) {
		return v
	}
	return v.Normalized()
}

// Reflect returns the reflection of the incident vector v about the normal
// n: v - 2*Dot(n, v)*n.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] {
	return v.Sub(n.MulS(2 * n.Dot(v)))
}

// Refract returns the refraction of the incident vector v through the
// surface with normal n and ratio of indices eta. On total internal
// reflection the zero vector is returned.
func (v Vec2[T]) Refract(n Vec2[T], eta T) Vec2[T] {
	d := n.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec2[T]{}
	}
	return v.MulS(eta).Sub(n.MulS(eta*d + Sqrt(k)))
}

// FaceForward returns v if Dot(nref, i) < 0 and -v otherwise.
func (v Vec2[T]) FaceForward(i, nref Vec2[T]) Vec2[T] {
	if nref.Dot(i) < 0 {
		return v
	}
	return v.Neg()
}

// Map returns f applied to every component.
func (v Vec2[T]) Map(f func(T) T) (r Vec2[T]) {
	mapTo(r[:], v[:], f)
	return
}

// Map2 returns f applied to every pair of components.
func (v Vec2[T]) Map2(o Vec2[T], f func(T, T) T) (r Vec2[T]) {
	map2To(r[:], v[:], o[:], f)
	return
}

// Map3 returns f applied to every triple of components.
func (v Vec2[T]) Map3(b, c Vec2[T], f func(T, T, T) T) (r Vec2[T]) {
	map3To(r[:], v[:], b[:], c[:], f)
	return
}

func (v Vec2[T]) Abs() Vec2[T]         { return v.Map(Abs[T]) }
func (v Vec2[T]) Sign() Vec2[T]        { return v.Map(Sign[T]) }
func (v Vec2[T]) Sqrt() Vec2[T]        { return v.Map(Sqrt[T]) }
func (v Vec2[T]) InverseSqrt() Vec2[T] { return v.Map(InverseSqrt[T]) }
func (v Vec2[T]) Exp() Vec2[T]         { return v.Map(Exp[T]) }
func (v Vec2[T]) Exp2() Vec2[T]        { return v.Map(Exp2[T]) }
func (v Vec2[T]) Log() Vec2[T]         { return v.Map(Log[T]) }
func (v Vec2[T]) Log2() Vec2[T]        { return v.Map(Log2[T]) }
func (v Vec2[T]) Log10() Vec2[T]       { return v.Map(Log10[T]) }
func (v Vec2[T]) Floor() Vec2[T]       { return v.Map(Floor[T]) }
func (v Vec2[T]) Ceiling() Vec2[T]     { return v.Map(Ceiling[T]) }
func (v Vec2[T]) Round() Vec2[T]       { return v.Map(Round[T]) }
func (v Vec2[T]) Truncate() Vec2[T]    { return v.Map(Truncate[T]) }
func (v Vec2[T]) Trunc() Vec2[T]       { return v.Map(Truncate[T]) }
func (v Vec2[T]) Fract() Vec2[T]       { return v.Map(Fract[T]) }
func (v Vec2[T]) Sin() Vec2[T]         { return v.Map(Sin[T]) }
func (v Vec2[T]) Cos() Vec2[T]         { return v.Map(Cos[T]) }
func (v Vec2[T]) Tan() Vec2[T]         { return v.Map(Tan[T]) }
func (v Vec2[T]) Asin() Vec2[T]        { return v.Map(Asin[T]) }
func (v Vec2[T]) Acos() Vec2[T]        { return v.Map(Acos[T]) }
func (v Vec2[T]) Atan() Vec2[T]        { return v.Map(Atan[T]) }
func (v Vec2[T]) Sinh() Vec2[T]        { return v.Map(Sinh[T]) }
func (v Vec2[T]) Cosh() Vec2[T]        { return v.Map(Cosh[T]) }
func (v Vec2[T]) Tanh() Vec2[T]        { return v.Map(Tanh[T]) }
func (v Vec2[T]) Asinh() Vec2[T]       { return v.Map(Asinh[T]) }
func (v Vec2[T]) Acosh() Vec2[T]       { return v.Map(Acosh[T]) }
func (v Vec2[T]) Atanh() Vec2[T]       { return v.Map(Atanh[T]) }
func (v Vec2[T]) Degrees() Vec2[T]     { return v.Map(Degrees[T]) }
func (v Vec2[T]) Radians() Vec2[T]     { return v.Map(Radians[T]) }

func (v Vec2[T]) HermiteInterpolationOrder3() Vec2[T] {
	return v.Map(HermiteInterpolationOrder3[T])
}

func (v Vec2[T]) HermiteInterpolationOrder5() Vec2[T] {
	return v.Map(HermiteInterpolationOrder5[T])
}

// Atan2 treats v as y and returns atan2(v, x) component-wise.
func (v Vec2[T]) Atan2(x Vec2[T]) Vec2[T] { return v.Map2(x, Atan2[T]) }

func (v Vec2[T]) Pow(e Vec2[T]) Vec2[T] { return v.Map2(e, Pow[T]) }
func (v Vec2[T]) PowS(e T) Vec2[T]      { return v.Map2(Splat2(e), Pow[T]) }
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { return v.Map2(o, Min[T]) }
func (v Vec2[T]) MinS(s T) Vec2[T]      { return v.Map2(Splat2(s), Min[T]) }
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { return v.Map2(o, Max[T]) }
func (v Vec2[T]) MaxS(s T) Vec2[T]      { return v.Map2(Splat2(s), Max[T]) }

// Step returns 0 where v < edge and 1 elsewhere.
func (v Vec2[T]) Step(edge Vec2[T]) Vec2[T] { return edge.Map2(v, Step[T]) }

// StepS is Step with a scalar edge.
func (v Vec2[T]) StepS(edge T) Vec2[T] { return Splat2(edge).Map2(v, Step[T]) }

// Clamp returns min(max(v, lo), hi) component-wise.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] { return v.Map3(lo, hi, Clamp[T]) }

// ClampS is Clamp with scalar bounds.
func (v Vec2[T]) ClampS(lo, hi T) Vec2[T] { return v.Map3(Splat2(lo), Splat2(hi), Clamp[T]) }

// Mix returns v*(1-t) + b*t component-wise.
func (v Vec2[T]) Mix(b, t Vec2[T]) Vec2[T] { return v.Map3(b, t, Mix[T]) }

// MixS is Mix with a scalar weight.
func (v Vec2[T]) MixS(b Vec2[T], t T) Vec2[T] { return v.Map3(b, Splat2(t), Mix[T]) }

// Lerp is Mix.
func (v Vec2[T]) Lerp(b, t Vec2[T]) Vec2[T] { return v.Map3(b, t, Lerp[T]) }

// LerpS is MixS.
func (v Vec2[T]) LerpS(b Vec2[T], t T) Vec2[T] { return v.Map3(b, Splat2(t), Lerp[T]) }

// Smoothstep interpolates v between edge0 and edge1 component-wise.
func (v Vec2[T]) Smoothstep(edge0, edge1 Vec2[T]) Vec2[T] {
	return edge0.Map3(edge1, v, Smoothstep[T])
}

// SmoothstepS is Smoothstep with scalar edges.
func (v Vec2[T]) SmoothstepS(edge0, edge1 T) Vec2[T] {
	return Splat2(edge0).Map3(Splat2(edge1), v, Smoothstep[T])
}

// Smootherstep is Smoothstep with the fifth-order polynomial.
func (v Vec2[T]) Smootherstep(edge0, edge1 Vec2[T]) Vec2[T] {
	return edge0.Map3(edge1, v, Smootherstep[T])
}

// SmootherstepS is Smootherstep with scalar edges.
func (v Vec2[T]) SmootherstepS(edge0, edge1 T) Vec2[T] {
	return Splat2(edge0).Map3(Splat2(edge1), v, Smootherstep[T])
}

// Fma returns v*b + c component-wise.
func (v Vec2[T]) Fma(b, c Vec2[T]) Vec2[T] { return v.Map3(b, c, Fma[T]) }

// FmaS is Fma with scalar b and c.
func (v Vec2[T]) FmaS(b, c T) Vec2[T] { return v.Map3(Splat2(b), Splat2(c), Fma[T]) }

// String formats v with DefaultSeparator.
func (v Vec2[T]) String() string { return v.Join(DefaultSeparator) }

// Join formats the components joined by sep.
func (v Vec2[T]) Join(sep string) string { return joinScalars(v[:], sep, formatScalar[T]) }

// JoinFormat formats every component with the fmt verb format (e.g. "%.3f").
func (v Vec2[T]) JoinFormat(sep, format string) string {
	return joinScalars(v[:], sep, verbFormatter[T](format))
}

// JoinLocale is JoinFormat with locale-aware digits and separators. An empty
// format prints every component as a plain localized decimal.
func (v Vec2[T]) JoinLocale(sep, format string, tag language.Tag) string {
	return joinScalars(v[:], sep, localeFormatter[T](format, tag))
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec2[T]) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vec2[T]) UnmarshalText(text []byte) error {
	p, err := ParseVec2[T](string(text), DefaultSeparator)
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVec2 parses components separated by sep. The number of parts must
// match the vector length exactly.
func ParseVec2[T Number](s, sep string) (v Vec2[T], err error) {
	err = parseScalars(v[:], s, sep, parseScalar[T])
	return
}

// TryParseVec2 is ParseVec2 returning ok instead of an error. On failure the
// zero vector is returned.
func TryParseVec2[T Number](s, sep string) (Vec2[T], bool) {
	v, err := ParseVec2[T](s, sep)
	if err != nil {
		return Vec2[T]{}, false
	}
	return v, true
}

// ParseVec2Locale is ParseVec2 accepting the decimal and grouping
// separators of tag.
func ParseVec2Locale[T Number](s, sep string, tag language.Tag) (v Vec2[T], err error) {
	err = parseScalars(v[:], s, sep, localeParser[T](tag))
	return
}

// ConvertVec2 converts every component to the kind D.
func ConvertVec2[D, S Number](v Vec2[S]) (r Vec2[D]) {
	for i := range r {
		r[i] = convert[D](v[i])
	}
	return
}

// BoolToVec2 maps true to 1 and false to 0.
func BoolToVec2[T Number](b BVec2) (r Vec2[T]) {
	for i := range r {
		r[i] = fromBool[T](b[i])
	}
	return
}

// And2 returns a & b component-wise.
func And2[T Integers](a, b Vec2[T]) (r Vec2[T]) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return
}

// Or2 returns a | b component-wise.
func Or2[T Integers](a, b Vec2[T]) (r Vec2[T]) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return
}

// Xor2 returns a ^ b component-wise.
func Xor2[T Integers](a, b Vec2[T]) (r Vec2[T]) {
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return
}

// Not2 returns ^a component-wise.
func Not2[T Integers](a Vec2[T]) (r Vec2[T]) {
	for i := range r {
		r[i] = ^a[i]
	}
	return
}

// Shl2 returns a << n component-wise.
func Shl2[T Integers](a Vec2[T], n uint) (r Vec2[T]) {
	for i := range r {
		r[i] = a[i] << n
	}
	return
}

// Shr2 returns a >> n component-wise.
func Shr2[T Integers](a Vec2[T], n uint) (r Vec2[T]) {
	for i := range r {
		r[i] = a[i] >> n
	}
	return
}
