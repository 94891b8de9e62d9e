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

// Command glmgen writes the concrete type aliases of package glm, such as
// Vec3f for Vec3[float32] and Mat4x4d for Mat4x4[float64].
//
// Usage:
//
//	glmgen -output zz_aliases.go -pkg glm
//
// Or via go:generate from the glm package:
//
//	//go:generate go run ../cmd/glmgen -output zz_aliases.go
//
// The output file is only rewritten when its content changes, so repeated
// runs leave modification times alone.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	outputFile = flag.String("output", "zz_aliases.go", "Output Go file")
	packageOut = flag.String("pkg", "glm", "Output package name")
	verbose    = flag.Bool("v", false, "Log every decision")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	src, err := Generate(*outputFile, *packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	changed, err := WriteIfChanged(*outputFile, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !changed {
		logger.Debug("output unchanged", "file", *outputFile)
		return
	}
	fmt.Printf("Successfully generated %s\n", *outputFile)
}
