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

// Package shader holds the types exchanged with the shader translator.
//
// Translation itself happens upstream of pipeline compilation; the
// compiler only consumes the per-stage summaries produced by it.
package shader

import "fmt"

// Stage identifies a single pipeline shader stage.
type Stage int

const (
	Vertex = Stage(iota)
	TessControl
	TessEval
	Geometry
	Fragment
	Compute
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case TessControl:
		return "tess-control"
	case TessEval:
		return "tess-eval"
	case Geometry:
		return "geometry"
	case Fragment:
		return "fragment"
	case Compute:
		return "compute"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Flag returns the StageFlags bit for the stage.
func (s Stage) Flag() StageFlags { return 1 << uint(s) }

// StageFlags is a bitmask of active pipeline shader stages.
type StageFlags uint32

const (
	VertexFlag      = StageFlags(1) << uint(Vertex)
	TessControlFlag = StageFlags(1) << uint(TessControl)
	TessEvalFlag    = StageFlags(1) << uint(TessEval)
	GeometryFlag    = StageFlags(1) << uint(Geometry)
	FragmentFlag    = StageFlags(1) << uint(Fragment)
	ComputeFlag     = StageFlags(1) << uint(Compute)

	// GraphicsFlags covers every stage of the 3D pipeline.
	GraphicsFlags = VertexFlag | TessControlFlag | TessEvalFlag | GeometryFlag | FragmentFlag
)

// UsageFlags describes which system generated values a translated
// program reads.
type UsageFlags uint32

const (
	UsesVertexID   = UsageFlags(1 << 0)
	UsesInstanceID = UsageFlags(1 << 1)
)

// Program is the summary of one translated shader stage: the attribute
// counts flowing in and out of the stage, and the system values it
// reads. This is all the pipeline compiler needs from translation.
type Program struct {
	InCount  int
	OutCount int
	Uses     UsageFlags
}
