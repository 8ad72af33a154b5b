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

	"github.com/wangxuejing/VulkanSamples/intel/shader"
)

// validate runs the cross-stage legality checks. It runs after every
// build step, once all pipeline state has been computed, and gates the
// whole compile. The checks are independent and evaluated in a fixed
// order; the first failure is returned.
func (p *Pipeline) validate(ctx context.Context) error {
	if p.ActiveStages&shader.VertexFlag == 0 {
		log.W(ctx, "Graphics pipeline requires a vertex shader")
		return ErrBadPipelineData
	}

	// Tessellation control and evaluation are either both present or
	// both absent.
	if (p.ActiveStages&shader.TessControlFlag == 0) !=
		(p.ActiveStages&shader.TessEvalFlag == 0) {
		log.W(ctx, "Tessellation requires both a control and an evaluation shader")
		return ErrBadPipelineData
	}

	if p.ActiveStages&shader.ComputeFlag != 0 &&
		p.ActiveStages&shader.GraphicsFlags != 0 {
		log.W(ctx, "A compute shader cannot be combined with graphics stages")
		return ErrBadPipelineData
	}

	if p.ActiveStages&(shader.TessControlFlag|shader.TessEvalFlag) != 0 &&
		p.Topology != PatchList {
		log.W(ctx, "Tessellation shaders require the patch list topology")
		return ErrBadPipelineData
	}

	if p.Topology == PatchList &&
		p.ActiveStages&^(shader.TessControlFlag|shader.TessEvalFlag) != 0 {
		log.W(ctx, "The patch list topology is only valid for tessellation stages")
		return ErrBadPipelineData
	}

	return nil
}
