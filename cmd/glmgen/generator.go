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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/tools/imports"
)

// Kind is a scalar kind with the suffix used in its alias names.
type Kind struct {
	Suffix string
	Type   string
	Float  bool
}

// Kinds lists every numeric scalar kind with an alias family. Bool vectors are
// concrete types already.
var Kinds = []Kind{
	{Suffix: "f", Type: "float32", Float: true},
	{Suffix: "d", Type: "float64", Float: true},
	{Suffix: "i", Type: "int32"},
	{Suffix: "u", Type: "uint32"},
	{Suffix: "l", Type: "int64"},
}

// Generate returns the formatted alias file for package pkg. filename is only
// used by the formatter to resolve imports.
func Generate(filename, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by glmgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n", pkg)

	for _, k := range Kinds {
		fmt.Fprintf(&buf, "\n// %s aliases.\n", k.Type)
		for n := 2; n <= 4; n++ {
			emitAlias(&buf, fmt.Sprintf("Vec%d%s", n, k.Suffix), fmt.Sprintf("Vec%d[%s]", n, k.Type))
		}
		for c := 2; c <= 4; c++ {
			for r := 2; r <= 4; r++ {
				emitAlias(&buf, fmt.Sprintf("Mat%dx%d%s", c, r, k.Suffix), fmt.Sprintf("Mat%dx%d[%s]", c, r, k.Type))
			}
		}
		for n := 2; n <= 4; n++ {
			emitAlias(&buf, fmt.Sprintf("Mat%d%s", n, k.Suffix), fmt.Sprintf("Mat%dx%d[%s]", n, n, k.Type))
		}
		if k.Float {
			emitAlias(&buf, "Quat"+k.Suffix, fmt.Sprintf("Quat[%s]", k.Type))
		}
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}

func emitAlias(buf *bytes.Buffer, name, target string) {
	fmt.Fprintf(buf, "\n// %s is %s.\n", name, target)
	fmt.Fprintf(buf, "type %s = %s\n", name, target)
}

// WriteIfChanged writes data to filename unless the file already holds
// exactly data. It reports whether the file was written.
func WriteIfChanged(filename string, data []byte) (bool, error) {
	old, err := os.ReadFile(filename)
	switch {
	case err == nil && bytes.Equal(old, data):
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return false, fmt.Errorf("write %s: %w", filename, err)
	}
	return true, nil
}
