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

package batch

import (
	"os"
	"strconv"
)

// Level is the widest vector instruction set the CPU reports. The kernels in
// this package are portable Go; the level only sizes the work handed to each
// worker, since wider units finish a range sooner.
type Level int

const (
	// LevelScalar means no vector unit was detected, or GLM_NO_SIMD is set.
	LevelScalar Level = iota

	// LevelSSE2 is the x86-64 baseline (128-bit).
	LevelSSE2

	// LevelAVX2 is 256-bit x86 SIMD.
	LevelAVX2

	// LevelAVX512 is 512-bit x86 SIMD.
	LevelAVX512

	// LevelNEON is ARM Advanced SIMD (128-bit).
	LevelNEON

	// LevelSVE is ARM scalable vectors.
	LevelSVE
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the detected instruction set.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the vector register width in bytes: 16 for
// SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return currentWidth }

// NoSimdEnv reports whether GLM_NO_SIMD is set to a true value. Any
// non-empty value that is not a boolean also counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("GLM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16
}

// MinParallelItems is the number of vectors below which a kernel runs on the
// calling goroutine, at a 16-byte vector width.
const MinParallelItems = 8192

// Grain returns the minimum number of vectors per worker range for the
// current level.
func Grain() int { return MinParallelItems * currentWidth / 16 }
