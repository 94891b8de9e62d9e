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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// aliasNames returns the type alias names declared in src.
func aliasNames(t *testing.T, filename string, src []byte) map[string]string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), filename, src, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}
	names := make(map[string]string)
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if !ts.Assign.IsValid() {
				t.Errorf("%s is not an alias", ts.Name.Name)
			}
			idx, ok := ts.Type.(*ast.IndexExpr)
			if !ok {
				t.Errorf("%s does not alias an instantiated type", ts.Name.Name)
				continue
			}
			names[ts.Name.Name] = idx.X.(*ast.Ident).Name + "[" + idx.Index.(*ast.Ident).Name + "]"
		}
	}
	return names
}

func TestGenerate(t *testing.T) {
	src, err := Generate("zz_aliases.go", "glm")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	content := string(src)
	if !strings.HasPrefix(content, "// Code generated by glmgen. DO NOT EDIT.") {
		t.Errorf("missing generation comment")
	}
	if !strings.Contains(content, "package glm") {
		t.Errorf("missing package declaration")
	}

	names := aliasNames(t, "zz_aliases.go", src)
	// 5 kinds x (3 vectors + 9 matrices + 3 short square names) + 2 quaternions.
	if got, want := len(names), 5*15+2; got != want {
		t.Errorf("got %d aliases, want %d", got, want)
	}
	for name, want := range map[string]string{
		"Vec3f":   "Vec3[float32]",
		"Vec2u":   "Vec2[uint32]",
		"Mat4x4d": "Mat4x4[float64]",
		"Mat2x3i": "Mat2x3[int32]",
		"Mat3l":   "Mat3x3[int64]",
		"Quatd":   "Quat[float64]",
	} {
		if got := names[name]; got != want {
			t.Errorf("%s aliases %q, want %q", name, got, want)
		}
	}
	if _, ok := names["Quati"]; ok {
		t.Errorf("quaternion alias generated for an integer kind")
	}
}

func TestCheckedInAliasesUpToDate(t *testing.T) {
	path := filepath.Join("..", "..", "glm", "zz_aliases.go")
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	src, err := Generate(path, "glm")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	want := aliasNames(t, path, src)
	got := aliasNames(t, path, onDisk)
	if len(got) != len(want) {
		t.Fatalf("%s has %d aliases, generator emits %d: run go generate ./glm", path, len(got), len(want))
	}
	for name, target := range want {
		if got[name] != target {
			t.Errorf("%s: %s aliases %q, want %q", path, name, got[name], target)
		}
	}
}

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.go")
	data := []byte("package x\n")

	changed, err := WriteIfChanged(path, data)
	if err != nil || !changed {
		t.Fatalf("first write: changed=%v err=%v", changed, err)
	}
	stat, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err = WriteIfChanged(path, data)
	if err != nil || changed {
		t.Fatalf("identical write: changed=%v err=%v", changed, err)
	}
	again, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !again.ModTime().Equal(stat.ModTime()) {
		t.Errorf("identical content rewrote the file")
	}

	changed, err = WriteIfChanged(path, []byte("package y\n"))
	if err != nil || !changed {
		t.Fatalf("new content: changed=%v err=%v", changed, err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "package y\n" {
		t.Errorf("got %q after rewrite", content)
	}
}
