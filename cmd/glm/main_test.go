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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"dot", []string{"dot", "1,2,3", "4,5,6"}, "32"},
		{"dot spaces", []string{"dot", "1, 2", "3, 4"}, "11"},
		{"dot negative first", []string{"dot", "--", "-1,2", "3,4"}, "5"},
		{"cross", []string{"cross", "1,0,0", "0,1,0"}, "0,0,1"},
		{"length", []string{"length", "3,4"}, "5"},
		{"normalize", []string{"normalize", "3,4"}, "0.6,0.8"},
		{"normalize zero", []string{"normalize", "0,0,0"}, "0,0,0"},
		{"format", []string{"--format", "%.2f", "normalize", "0,3,4"}, "0.00,0.60,0.80"},
		{"sep", []string{"--sep", " ", "length", "0 0 3 4"}, "5"},
		{"locale", []string{"--locale", "de", "--sep", ";", "dot", "0,5;0", "3;1"}, "1,5"},
		{"reflect", []string{"reflect", "1,-1", "0,1"}, "1,1"},
		{"refract straight", []string{"refract", "0,-1", "0,1"}, "0,-1"},
		{"refract total", []string{"refract", "--eta", "2", "0.8,-0.6", "0,1"}, "0,0"},
		{"swizzle", []string{"swizzle", "1,2,3,4", "wzyx"}, "4,3,2,1"},
		{"swizzle repeat", []string{"swizzle", "1,2", "yyx"}, "2,2,1"},
		{"det", []string{"det", "1,2; 3,4"}, "-2"},
		{"det 3x3", []string{"det", "2,0,1; 1,3,2; 1,1,2"}, "6"},
		{"inverse", []string{"inverse", "1,2; 3,4"}, "-2, 1; 1.5, -0.5"},
		{"inverse format", []string{"--format", "%.1f", "inverse", "1,2; 3,4"}, "-2.0, 1.0; 1.5, -0.5"},
		{"transpose", []string{"transpose", "1,2,3; 4,5,6"}, "1, 4; 2, 5; 3, 6"},
		{"mul vec", []string{"mul", "0,1; 1,0", "1,2"}, "2,1"},
		{"mul non-square vec", []string{"mul", "1,2; 3,4; 5,6", "1,1,1"}, "9,12"},
		{"mul mat", []string{"mul", "1,2; 3,4", "1,0; 0,1"}, "1, 2; 3, 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length mismatch", []string{"dot", "1,2", "1,2,3"}, "different lengths"},
		{"too short", []string{"length", "1"}, "2 to 4 components"},
		{"bad number", []string{"length", "1,x"}, "component 1"},
		{"cross 2d", []string{"cross", "1,0", "0,1"}, "3-component"},
		{"not square", []string{"det", "1,2,3; 4,5,6"}, "not square"},
		{"bad shape", []string{"det", "1; 2; 3; 4; 5"}, "2 to 4 columns"},
		{"mul size", []string{"mul", "1,2; 3,4", "1,2,3"}, "times 3-component"},
		{"swizzle range", []string{"swizzle", "1,2", "z"}, "invalid swizzle"},
		{"locale", []string{"--locale", "not a tag!", "length", "1,2"}, "--locale"},
		{"args", []string{"dot", "1,2"}, "accepts 2 arg(s)"},
		{"negative without dashes", []string{"dot", "-1,2", "3,4"}, "unknown shorthand flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv(envSep, "|")
	got, err := run(t, "", "dot", "1|2", "3|4")
	require.NoError(t, err)
	assert.Equal(t, "11\n", got)

	// The flag wins over the environment.
	got, err = run(t, "", "--sep", ",", "dot", "1,2", "3,4")
	require.NoError(t, err)
	assert.Equal(t, "11\n", got)

	t.Setenv(envLocale, "de")
	got, err = run(t, "", "length", "1,5|2")
	require.NoError(t, err)
	assert.Equal(t, "2,5\n", got)
}

func TestTransform(t *testing.T) {
	input := "1,2,3\n\n4,5,6\n"
	got, err := run(t, input, "transform", "1,0,0,0; 0,1,0,0; 0,0,1,0; 10,20,30,1")
	require.NoError(t, err)
	assert.Equal(t, "11,22,33\n14,25,36\n", got)

	_, err = run(t, "1,2\n", "transform", "1,0,0,0; 0,1,0,0; 0,0,1,0; 0,0,0,1")
	require.ErrorContains(t, err, "line 1")

	_, err = run(t, "", "transform", "1,0; 0,1")
	require.ErrorContains(t, err, "4x4")
}

func TestInfo(t *testing.T) {
	got, err := run(t, "", "info")
	require.NoError(t, err)
	assert.Contains(t, got, "simd level:")
	assert.Contains(t, got, "workers:")
}
