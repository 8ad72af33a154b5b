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

package pipeline

import (
	"context"

	"github.com/google/gapid/core/log"

	"github.com/wangxuejing/VulkanSamples/intel/genhw"
)

// primTypes maps the abstract topologies with a fixed hardware code.
// PatchList is absent: its code depends on the patch control point
// count.
var primTypes = map[Topology]genhw.PrimType{
	PointList:        genhw.PrimPointList,
	LineList:         genhw.PrimLineList,
	LineStrip:        genhw.PrimLineStrip,
	TriangleList:     genhw.PrimTriList,
	TriangleStrip:    genhw.PrimTriStrip,
	RectList:         genhw.PrimRectList,
	QuadList:         genhw.PrimQuadList,
	QuadStrip:        genhw.PrimQuadStrip,
	LineListAdj:      genhw.PrimLineListAdj,
	LineStripAdj:     genhw.PrimLineStripAdj,
	TriangleListAdj:  genhw.PrimTriListAdj,
	TriangleStripAdj: genhw.PrimTriStripAdj,
}

// maxPatchControlPoints is the largest patch size the hardware can
// assemble.
const maxPatchControlPoints = 32

// buildInputAssembly derives the hardware primitive type and the
// provoking vertex codes from the input assembly block. It only sets
// record fields; the commands consuming them are emitted by the
// recorder.
func (p *Pipeline) buildInputAssembly(ctx context.Context, info *createInfo) error {
	p.Topology = info.ia.Topology
	p.DisableVSCache = info.ia.DisableVertexReuse

	if info.ia.ProvokingVertex == ProvokingVertexFirst {
		p.ProvokingVertexTri = 0
		p.ProvokingVertexTriFan = 1
		p.ProvokingVertexLine = 0
	} else {
		p.ProvokingVertexTri = 2
		p.ProvokingVertexTriFan = 2
		p.ProvokingVertexLine = 1
	}

	switch info.ia.Topology {
	case PatchList:
		cp := info.tess.PatchControlPoints
		if cp == 0 || cp > maxPatchControlPoints {
			log.W(ctx, "Patch control point count %d out of range [1, %d]",
				cp, maxPatchControlPoints)
			return ErrBadPipelineData
		}
		p.PrimType = genhw.PrimPatchList1 + genhw.PrimType(cp-1)
	default:
		prim, ok := primTypes[info.ia.Topology]
		if !ok {
			log.W(ctx, "Unrecognized topology %d", info.ia.Topology)
			return ErrBadPipelineData
		}
		p.PrimType = prim
	}

	if info.ia.PrimitiveRestartEnable {
		p.PrimitiveRestart = true
		p.PrimitiveRestartIndex = info.ia.PrimitiveRestartIndex
	} else {
		p.PrimitiveRestart = false
	}

	return nil
}
