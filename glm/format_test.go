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

package glm_test

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-glm/glm"
)

func TestVecString(t *testing.T) {
	assert.Equal(t, "1.5, -2, 3.25", glm.NewVec3(1.5, -2.0, 3.25).String())
	assert.Equal(t, "0.1, 7", glm.NewVec2[float32](0.1, 7).String())
	assert.Equal(t, "4294967295, 0, 1, 2", glm.NewVec4[uint32](4294967295, 0, 1, 2).String())
	assert.Equal(t, "1|2|3", glm.NewVec3[int64](1, 2, 3).Join("|"))
	assert.Equal(t, "1.50, -2.00", glm.NewVec2(1.5, -2.0).JoinFormat(", ", "%.2f"))
	assert.Equal(t, "true, false, true", glm.BVec3{true, false, true}.String())
}

func TestParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		v := glm.RandomNormal4(r, 0.0, 1e6)
		got, err := glm.ParseVec4[float64](v.String(), glm.DefaultSeparator)
		require.NoError(t, err)
		require.Equal(t, v, got)

		f := glm.RandomNormal3(r, float32(0), 1)
		gotf, err := glm.ParseVec3[float32](f.Join(";"), ";")
		require.NoError(t, err)
		require.Equal(t, f, gotf)

		i := glm.RandomUniform2(r, glm.MinValue[int64](), glm.MaxValue[int64]())
		goti, err := glm.ParseVec2[int64](i.String(), ", ")
		require.NoError(t, err)
		require.Equal(t, i, goti)
	}
}

func TestParseWhitespace(t *testing.T) {
	v, err := glm.ParseVec3[float64](" 1 ,2,  3 ", ",")
	require.NoError(t, err)
	assert.Equal(t, glm.Vec3[float64]{1, 2, 3}, v)
}

func TestParseErrors(t *testing.T) {
	_, err := glm.ParseVec3[float64]("1, 2", ", ")
	require.ErrorIs(t, err, glm.ErrFormat)
	require.ErrorIs(t, err, glm.ErrComponentCount)
	var pe *glm.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, -1, pe.Index)
	assert.Equal(t, "1, 2", pe.Input)

	_, err = glm.ParseVec3[float64]("1, 2, 3, 4", ", ")
	require.ErrorIs(t, err, glm.ErrComponentCount)

	_, err = glm.ParseVec3[int32]("1, x, 3", ", ")
	require.ErrorIs(t, err, glm.ErrFormat)
	require.NotErrorIs(t, err, glm.ErrComponentCount)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Index)
	var ne *strconv.NumError
	require.True(t, errors.As(err, &ne))

	// Native range checks of the scalar kind apply.
	_, err = glm.ParseVec2[int32]("1, 3000000000", ", ")
	require.ErrorIs(t, err, strconv.ErrRange)
	_, err = glm.ParseVec2[uint32]("-1, 2", ", ")
	require.ErrorIs(t, err, glm.ErrFormat)

	// The wrong separator is a count error.
	_, err = glm.ParseVec2[float64]("1;2", ", ")
	require.ErrorIs(t, err, glm.ErrComponentCount)
}

func TestTryParse(t *testing.T) {
	v, ok := glm.TryParseVec2[float64]("1, 2", ", ")
	assert.True(t, ok)
	assert.Equal(t, glm.Vec2[float64]{1, 2}, v)

	w, ok := glm.TryParseVec4[int32]("1, 2, 3", ", ")
	assert.False(t, ok)
	assert.Equal(t, glm.Vec4[int32]{}, w)

	b, ok := glm.TryParseBVec2("true, nope", ", ")
	assert.False(t, ok)
	assert.Equal(t, glm.BVec2{}, b)
}

func TestParseBVec(t *testing.T) {
	b, err := glm.ParseBVec3("true, false, 1", ", ")
	require.NoError(t, err)
	assert.Equal(t, glm.BVec3{true, false, true}, b)

	b2, err := glm.ParseBVec2("false, true", ", ")
	require.NoError(t, err)
	assert.Equal(t, glm.BVec2{false, true}, b2)
	assert.Equal(t, "false, true", b2.String())

	b4, err := glm.ParseBVec4("1, 0, 0, 1", ", ")
	require.NoError(t, err)
	assert.Equal(t, glm.BVec4{true, false, false, true}, b4)
	assert.Equal(t, "true, false, false, true", b4.String())

	_, err = glm.ParseBVec4("true, false", ", ")
	require.ErrorIs(t, err, glm.ErrComponentCount)
}

func TestLocale(t *testing.T) {
	v := glm.NewVec2(1234.5, -2.0)
	s := v.JoinLocale("; ", "", language.German)
	assert.Equal(t, "1.234,5; -2", s)

	got, err := glm.ParseVec2Locale[float64](s, "; ", language.German)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	got, err = glm.ParseVec2Locale[float64]("1,234.5; -2", "; ", language.English)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	i, err := glm.ParseVec3Locale[int64]("1.000; 2; 3", "; ", language.German)
	require.NoError(t, err)
	assert.Equal(t, glm.Vec3[int64]{1000, 2, 3}, i)
}

func TestTextMarshaling(t *testing.T) {
	type payload struct {
		Pos  glm.Vec3[float64]
		Mask glm.BVec2
	}
	in := payload{Pos: glm.NewVec3(1.0, 2.5, -3.0), Mask: glm.BVec2{true, false}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Pos": "1, 2.5, -3", "Mask": "true, false"}`, string(data))

	var out payload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var bad payload
	err = json.Unmarshal([]byte(`{"Pos": "1, 2"}`), &bad)
	require.ErrorIs(t, err, glm.ErrComponentCount)
}

func TestMatString(t *testing.T) {
	assert.Equal(t, "1, 0; 0, 1", glm.IdentityMat2x2[int32]().String())
	m := glm.NewMat2x3(1.0, 2.0, 3.0, 4.0, 5.0, 6.5)
	assert.Equal(t, "1, 2, 3; 4, 5, 6.5", m.String())

	got, err := glm.ParseMat2x3[float64](m.String())
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = glm.ParseMat2x2[float64]("1, 2")
	require.ErrorIs(t, err, glm.ErrComponentCount)
	_, err = glm.ParseMat2x2[float64]("1, 2; 3")
	require.ErrorIs(t, err, glm.ErrComponentCount)

	_, err = glm.ParseMat2x2[float64]("1, 2; 3, x")
	var pe *glm.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Index)
	assert.Equal(t, "1, 2; 3, x", pe.Input)
}
