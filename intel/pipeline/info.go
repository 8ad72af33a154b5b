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

	"github.com/wangxuejing/VulkanSamples/intel/format"
	"github.com/wangxuejing/VulkanSamples/intel/shader"
)

// Topology is the abstract primitive assembly mode requested for a
// pipeline, before translation to a hardware 3DPRIM code.
type Topology int

const (
	PointList = Topology(iota)
	LineList
	LineStrip
	TriangleList
	TriangleStrip
	RectList
	QuadList
	QuadStrip
	LineListAdj
	LineStripAdj
	TriangleListAdj
	TriangleStripAdj
	PatchList
)

// ProvokingVertex selects which vertex of a primitive supplies the
// flat-shaded attributes.
type ProvokingVertex int

const (
	ProvokingVertexFirst = ProvokingVertex(iota)
	ProvokingVertexLast
)

// InputRate selects whether a vertex binding advances per vertex or per
// instance.
type InputRate int

const (
	RatePerVertex = InputRate(iota)
	RatePerInstance
)

// CreateInfo is implemented by every pipeline configuration block.
// A pipeline is described by a sequence of these; later blocks of the
// same kind overwrite earlier ones.
type CreateInfo interface {
	isCreateInfo()
}

// GraphicsPipelineInfo is the root block of a graphics pipeline
// description.
type GraphicsPipelineInfo struct {
	Flags uint32
}

// VertexBinding describes one vertex buffer binding slot.
type VertexBinding struct {
	Stride uint32
	Rate   InputRate
}

// VertexAttribute describes one vertex attribute fetched from a binding.
type VertexAttribute struct {
	Binding uint32
	Format  format.Format
	Offset  uint32 // bytes from the start of a binding element
}

// VertexInputInfo declares the vertex buffer layout.
type VertexInputInfo struct {
	Bindings   []VertexBinding
	Attributes []VertexAttribute
}

// InputAssemblyInfo configures primitive assembly.
type InputAssemblyInfo struct {
	Topology               Topology
	DisableVertexReuse     bool
	ProvokingVertex        ProvokingVertex
	PrimitiveRestartEnable bool
	PrimitiveRestartIndex  uint32
}

// DepthBufferInfo carries the depth/stencil attachment format. It is
// copied onto the pipeline record for the command recorder and not
// interpreted during compilation.
type DepthBufferInfo struct {
	Format format.Format
}

// ColorAttachment is the per-attachment part of ColorBlendInfo.
type ColorAttachment struct {
	BlendEnable      bool
	Format           format.Format
	ChannelWriteMask uint8
}

// ColorBlendInfo carries blend state, copied verbatim for the command
// recorder.
type ColorBlendInfo struct {
	AlphaToCoverageEnable bool
	DualSourceBlendEnable bool
	Attachments           []ColorAttachment
}

// RasterizerInfo carries the rasterizer state this compiler passes
// through to the record.
type RasterizerInfo struct {
	DepthClipEnable         bool
	RasterizerDiscardEnable bool
	PointSize               float32
}

// TessellationInfo configures the tessellation stages. The control
// point count also selects the hardware patch list topology.
type TessellationInfo struct {
	PatchControlPoints uint32
	OptimalTessFactor  float32
	FixedTessFactor    float32
}

// ShaderStageInfo attaches one translated shader program to a stage.
// The same block kind serves all five graphics stages, demultiplexed by
// Stage.
type ShaderStageInfo struct {
	Stage   shader.Stage
	Program shader.Program
}

// ComputePipelineInfo is the root block of a compute pipeline
// description.
type ComputePipelineInfo struct {
	Program shader.Program
	Flags   uint32
}

func (GraphicsPipelineInfo) isCreateInfo() {}
func (VertexInputInfo) isCreateInfo()      {}
func (InputAssemblyInfo) isCreateInfo()    {}
func (DepthBufferInfo) isCreateInfo()      {}
func (ColorBlendInfo) isCreateInfo()       {}
func (RasterizerInfo) isCreateInfo()       {}
func (TessellationInfo) isCreateInfo()     {}
func (ShaderStageInfo) isCreateInfo()      {}
func (ComputePipelineInfo) isCreateInfo()  {}

// stageSlot is one of the five per-stage slots of the flat aggregate.
type stageSlot struct {
	present bool
	program shader.Program
}

// createInfo is the flat configuration record built from a CreateInfo
// sequence. Absent blocks keep their zero value.
type createInfo struct {
	graphics GraphicsPipelineInfo
	vi       VertexInputInfo
	ia       InputAssemblyInfo
	db       DepthBufferInfo
	cb       ColorBlendInfo
	rs       RasterizerInfo
	tess     TessellationInfo
	stages   [shader.Fragment + 1]stageSlot
	compute  ComputePipelineInfo
}

// aggregate folds a configuration block sequence into the flat record.
// Later blocks of a kind overwrite earlier ones. An unrecognized block
// or shader stage rejects the whole description.
func aggregate(ctx context.Context, infos []CreateInfo) (*createInfo, error) {
	out := &createInfo{}
	for _, info := range infos {
		switch info := info.(type) {
		case GraphicsPipelineInfo:
			out.graphics = info
		case VertexInputInfo:
			out.vi = info
		case InputAssemblyInfo:
			out.ia = info
		case DepthBufferInfo:
			out.db = info
		case ColorBlendInfo:
			out.cb = info
		case RasterizerInfo:
			out.rs = info
		case TessellationInfo:
			out.tess = info
		case ShaderStageInfo:
			if info.Stage < shader.Vertex || info.Stage > shader.Fragment {
				log.W(ctx, "Unrecognized pipeline shader stage %v", info.Stage)
				return nil, ErrBadPipelineData
			}
			out.stages[info.Stage] = stageSlot{present: true, program: info.Program}
		case ComputePipelineInfo:
			out.compute = info
		default:
			log.W(ctx, "Unrecognized pipeline create info %T", info)
			return nil, ErrBadPipelineData
		}
	}
	return out, nil
}
