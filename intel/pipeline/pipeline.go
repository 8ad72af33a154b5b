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

// Package pipeline compiles an abstract pipeline description into a
// validated pipeline record and a block of raw gen6/gen7 command words,
// ready for a command recorder to splice into a submission.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/gapid/core/fault"
	"github.com/google/gapid/core/log"

	"github.com/wangxuejing/VulkanSamples/intel/format"
	"github.com/wangxuejing/VulkanSamples/intel/genhw"
	"github.com/wangxuejing/VulkanSamples/intel/gpu"
	"github.com/wangxuejing/VulkanSamples/intel/shader"
)

const (
	// ErrBadPipelineData is returned for malformed or contradictory
	// pipeline descriptions.
	ErrBadPipelineData = fault.Const("bad pipeline data")
	// ErrUnavailable is returned by the entry points that are not
	// implemented.
	ErrUnavailable = fault.Const("pipeline feature unavailable")
	// ErrOutOfMemory is returned when the pipeline record cannot be
	// allocated.
	ErrOutOfMemory = fault.Const("out of memory")
)

const (
	// cmdCapacity is the fixed capacity of a pipeline's command block,
	// in words. The largest command block a legal pipeline can emit is
	// just over a hundred words (see the capacity test), so exceeding
	// this is always a compiler defect.
	cmdCapacity = 512

	// maxVertexBindings bounds both the vertex binding table and the
	// attribute count.
	maxVertexBindings = 33
)

// WaFlags selects the hardware erratum workarounds the command recorder
// must apply around this pipeline.
type WaFlags uint32

const (
	WaGen6PreDepthStallWrite = WaFlags(1 << iota)
	WaGen6PreCommandScoreboardStall
	WaGen7PreVSDepthStallWrite
	WaGen7PostCommandCSStall
	WaGen7PostCommandDepthStall
)

// Pipeline is a compiled pipeline. It is immutable once returned and is
// owned exclusively by the caller.
type Pipeline struct {
	GPU gpu.Info

	// Input assembly.
	Topology              Topology        // abstract, kept for validation
	PrimType              genhw.PrimType  // derived hardware code
	ProvokingVertexTri    uint32
	ProvokingVertexTriFan uint32
	ProvokingVertexLine   uint32
	PrimitiveRestart      bool
	PrimitiveRestartIndex uint32
	DisableVSCache        bool

	// Shader stages.
	ActiveStages shader.StageFlags
	VS           shader.Program
	GS           shader.Program

	// Vertex buffer layout.
	Bindings []VertexBinding

	// Rasterizer pass-through.
	DepthClipEnable         bool
	RasterizerDiscardEnable bool
	PointSize               float32

	// Opaque sub-state carried for the command recorder.
	DepthFormat format.Format
	ColorBlend  ColorBlendInfo
	Tess        TessellationInfo

	WaFlags WaFlags

	cmds []uint32
}

// Commands returns the raw command words emitted for the pipeline. The
// returned slice aliases the pipeline and must not be mutated.
func (p *Pipeline) Commands() []uint32 { return p.cmds }

// alloc reserves n words at the end of the command block and returns
// them for writing. The block has a fixed capacity sized so that no
// legal pipeline can fill it; overflowing it is a compiler defect, not
// a caller error.
func (p *Pipeline) alloc(n int) []uint32 {
	if len(p.cmds)+n > cap(p.cmds) {
		panic(fmt.Errorf("pipeline command block overflow: %d+%d words exceeds %d",
			len(p.cmds), n, cap(p.cmds)))
	}
	start := len(p.cmds)
	p.cmds = p.cmds[:start+n]
	return p.cmds[start:]
}

// buildShaders folds the translated stage programs into the record.
// Translation happens upstream; only its summaries arrive here.
func (p *Pipeline) buildShaders(info *createInfo) {
	for stage, slot := range info.stages {
		if !slot.present {
			continue
		}
		p.ActiveStages |= shader.Stage(stage).Flag()
		switch shader.Stage(stage) {
		case shader.Vertex:
			p.VS = slot.program
		case shader.Geometry:
			p.GS = slot.program
		}
	}
}

// buildRasterizer copies the rasterizer state through to the record.
func (p *Pipeline) buildRasterizer(info *createInfo) {
	p.DepthClipEnable = info.rs.DepthClipEnable
	p.RasterizerDiscardEnable = info.rs.RasterizerDiscardEnable
	p.PointSize = info.rs.PointSize
}

// buildAll runs every build step against the record in emission order.
// The validator runs separately, after all state has been computed.
func (p *Pipeline) buildAll(ctx context.Context, info *createInfo) error {
	p.buildShaders(info)

	if len(info.vi.Bindings) > maxVertexBindings ||
		len(info.vi.Attributes) > maxVertexBindings {
		log.W(ctx, "Too many vertex bindings (%d) or attributes (%d), limit is %d",
			len(info.vi.Bindings), len(info.vi.Attributes), maxVertexBindings)
		return ErrBadPipelineData
	}

	p.Bindings = make([]VertexBinding, len(info.vi.Bindings))
	copy(p.Bindings, info.vi.Bindings)

	if err := p.buildVertexElements(ctx, info); err != nil {
		return err
	}

	if p.GPU.AtLeast(gpu.Gen7) {
		urbAllocatorFor(p.GPU).alloc(p)
		p.buildPushConstAlloc()
		p.buildGS()
		p.buildHS()
		p.buildTE()
		p.buildDS()

		p.WaFlags = WaGen6PreDepthStallWrite |
			WaGen6PreCommandScoreboardStall |
			WaGen7PreVSDepthStallWrite |
			WaGen7PostCommandCSStall |
			WaGen7PostCommandDepthStall
	} else {
		urbAllocatorFor(p.GPU).alloc(p)

		p.WaFlags = WaGen6PreDepthStallWrite |
			WaGen6PreCommandScoreboardStall
	}

	if err := p.buildInputAssembly(ctx, info); err != nil {
		return err
	}
	p.buildRasterizer(info)

	p.DepthFormat = info.db.Format
	p.ColorBlend = info.cb
	p.Tess = info.tess

	return nil
}

// CreateGraphicsPipeline compiles a graphics pipeline for the given GPU
// from a sequence of configuration blocks. On error no pipeline is
// returned and nothing of the attempt survives.
func CreateGraphicsPipeline(ctx context.Context, info gpu.Info, infos []CreateInfo) (*Pipeline, error) {
	flat, err := aggregate(ctx, infos)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		GPU:  info,
		cmds: make([]uint32, 0, cmdCapacity),
	}

	if err := p.buildAll(ctx, flat); err != nil {
		return nil, err
	}
	if err := p.validate(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateComputePipeline is not implemented.
func CreateComputePipeline(ctx context.Context, info gpu.Info, infos []CreateInfo) (*Pipeline, error) {
	return nil, ErrUnavailable
}

// Store serializes a compiled pipeline. Not implemented.
func (p *Pipeline) Store(ctx context.Context) ([]byte, error) {
	return nil, ErrUnavailable
}

// Load deserializes a stored pipeline. Not implemented.
func Load(ctx context.Context, info gpu.Info, data []byte) (*Pipeline, error) {
	return nil, ErrUnavailable
}

// CreatePipelineDelta links two pipelines into a delta. Not implemented.
func CreatePipelineDelta(ctx context.Context, p1, p2 *Pipeline) (interface{}, error) {
	return nil, ErrUnavailable
}
