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

//go:build arm64

package batch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	switch {
	case cpu.ARM64.HasSVE:
		// The SVE length is implementation defined; size ranges as for NEON.
		currentLevel, currentWidth = LevelSVE, 16
	case cpu.ARM64.HasASIMD:
		currentLevel, currentWidth = LevelNEON, 16
	default:
		setScalarMode()
	}
}
