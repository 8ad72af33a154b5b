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

// Package format translates abstract color formats to the hardware
// surface format codes the vertex fetch unit accepts.
package format

import (
	"fmt"

	"github.com/google/gapid/core/fault"

	"github.com/wangxuejing/VulkanSamples/intel/genhw"
	"github.com/wangxuejing/VulkanSamples/intel/gpu"
)

// ErrUnsupported is returned by Translate for formats the vertex fetch
// unit cannot read.
const ErrUnsupported = fault.Const("unsupported hardware format")

// Format is an abstract color / vertex attribute format.
type Format int

const (
	Undefined = Format(iota)
	R32SFloat
	R32SInt
	R32UInt
	R32G32SFloat
	R32G32SInt
	R32G32UInt
	R32G32B32SFloat
	R32G32B32SInt
	R32G32B32UInt
	R32G32B32A32SFloat
	R32G32B32A32SInt
	R32G32B32A32UInt
	R8G8B8A8Unorm
	R8G8B8A8SInt
	R8G8B8A8UInt
	B8G8R8A8Unorm

	// Depth formats carried opaquely on the pipeline record. They are
	// never legal as vertex attribute formats.
	D24UnormS8UInt
	D32SFloat
)

type desc struct {
	name     string
	channels int
	integer  bool
	hw       genhw.SurfaceFormat
	fetch    bool // readable by the vertex fetch unit
}

var descs = map[Format]desc{
	Undefined:          {name: "UNDEFINED"},
	R32SFloat:          {"R32_SFLOAT", 1, false, genhw.FmtR32Float, true},
	R32SInt:            {"R32_SINT", 1, true, genhw.FmtR32Sint, true},
	R32UInt:            {"R32_UINT", 1, true, genhw.FmtR32Uint, true},
	R32G32SFloat:       {"R32G32_SFLOAT", 2, false, genhw.FmtR32G32Float, true},
	R32G32SInt:         {"R32G32_SINT", 2, true, genhw.FmtR32G32Sint, true},
	R32G32UInt:         {"R32G32_UINT", 2, true, genhw.FmtR32G32Uint, true},
	R32G32B32SFloat:    {"R32G32B32_SFLOAT", 3, false, genhw.FmtR32G32B32Float, true},
	R32G32B32SInt:      {"R32G32B32_SINT", 3, true, genhw.FmtR32G32B32Sint, true},
	R32G32B32UInt:      {"R32G32B32_UINT", 3, true, genhw.FmtR32G32B32Uint, true},
	R32G32B32A32SFloat: {"R32G32B32A32_SFLOAT", 4, false, genhw.FmtR32G32B32A32Float, true},
	R32G32B32A32SInt:   {"R32G32B32A32_SINT", 4, true, genhw.FmtR32G32B32A32Sint, true},
	R32G32B32A32UInt:   {"R32G32B32A32_UINT", 4, true, genhw.FmtR32G32B32A32Uint, true},
	R8G8B8A8Unorm:      {"R8G8B8A8_UNORM", 4, false, genhw.FmtR8G8B8A8Unorm, true},
	R8G8B8A8SInt:       {"R8G8B8A8_SINT", 4, true, genhw.FmtR8G8B8A8Sint, true},
	R8G8B8A8UInt:       {"R8G8B8A8_UINT", 4, true, genhw.FmtR8G8B8A8Uint, true},
	B8G8R8A8Unorm:      {"B8G8R8A8_UNORM", 4, false, genhw.FmtB8G8R8A8Unorm, true},
	D24UnormS8UInt:     {name: "D24_UNORM_S8_UINT", channels: 2},
	D32SFloat:          {name: "D32_SFLOAT", channels: 1},
}

func (f Format) String() string {
	if d, ok := descs[f]; ok {
		return d.name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Channels returns the number of channels the format declares.
func (f Format) Channels() int { return descs[f].channels }

// IsInt returns true for integer formats.
func (f Format) IsInt() bool { return descs[f].integer }

// Translate returns the hardware surface format code for f on the given
// GPU, or ErrUnsupported if the vertex fetch unit cannot read it.
func Translate(info gpu.Info, f Format) (genhw.SurfaceFormat, error) {
	d, ok := descs[f]
	if !ok || !d.fetch {
		return 0, ErrUnsupported
	}
	return d.hw, nil
}
