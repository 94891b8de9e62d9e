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

// Command glm evaluates vector and matrix expressions from the command line.
//
// Usage:
//
//	glm dot "1,2,3" "4,5,6"
//	glm normalize "3,4"
//	glm det "1,2; 3,4"
//	glm mul "0,1; 1,0" "1,2"
//	glm swizzle "1,2,3,4" wzyx
//	glm transform "1,0,0,0; 0,1,0,0; 0,0,1,0; 5,0,0,1" < points.txt
//	glm info
//
// Vectors are 2 to 4 components separated by --sep (default ","). Matrices
// are written column by column, columns separated by ";" and components by
// ",", so "1,2; 3,4" has first column (1, 2).
//
// Flags:
//
//	--sep <s>       Vector component separator (env GLM_SEP)
//	--format <verb> fmt verb for printed numbers, e.g. %.3f
//	--locale <tag>  BCP 47 tag for vector parsing and number printing (env GLM_LOCALE)
//	-v, --verbose   Log debug information to stderr
//
// A locale whose decimal separator is "," needs a different --sep.
//
// An argument starting with "-" is read as a flag. End the flags with "--"
// before a vector whose first component is negative:
//
//	glm dot -- -1,2 3,4
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
