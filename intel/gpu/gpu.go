// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gpu describes the GPU a pipeline is compiled for.
//
// The descriptor is read-only once constructed and may be shared freely
// between concurrent pipeline compiles.
package gpu

import "fmt"

// Gen is a hardware generation number scaled by 100, so that half
// generations order correctly (gen 7.5 > gen 7).
type Gen int

const (
	Gen6  = Gen(600)
	Gen7  = Gen(700)
	Gen75 = Gen(750)
)

func (g Gen) String() string {
	switch g {
	case Gen6:
		return "gen6"
	case Gen7:
		return "gen7"
	case Gen75:
		return "gen7.5"
	default:
		return fmt.Sprintf("gen(%d)", int(g))
	}
}

// Info describes one GPU.
type Info struct {
	Gen Gen
	GT  int // graphics tier, 1 to 3
}

// AtLeast returns true if the GPU is generation g or newer.
func (i Info) AtLeast(g Gen) bool { return i.Gen >= g }

func (i Info) String() string {
	return fmt.Sprintf("%v GT%d", i.Gen, i.GT)
}
