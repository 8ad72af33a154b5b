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
	"github.com/wangxuejing/VulkanSamples/intel/genhw"
	"github.com/wangxuejing/VulkanSamples/intel/shader"
)

// buildVertexElements emits the 3DSTATE_VERTEX_ELEMENTS command: one
// two-word descriptor per declared attribute, in declaration order,
// plus a synthetic trailing element when the vertex shader reads the
// vertex or instance ID. Channels beyond an attribute's format are
// synthesized: zero for channels 1-3, one (integer or float) for the
// missing fourth channel.
//
// With no attributes and no system value usage the command is omitted
// entirely; a header-only command would be illegal.
func (p *Pipeline) buildVertexElements(ctx context.Context, info *createInfo) error {
	attrs := info.vi.Attributes
	useVID := p.VS.Uses&shader.UsesVertexID != 0
	useIID := p.VS.Uses&shader.UsesInstanceID != 0

	cmdLen := 1 + 2*len(attrs)
	if useVID || useIID {
		cmdLen += 2
	}
	if cmdLen == 1 {
		return nil
	}

	dw := p.alloc(cmdLen)
	dw[0] = genhw.Header(genhw.CmdVertexElements, cmdLen)
	w := dw[1:]

	for _, attr := range attrs {
		hw, err := format.Translate(p.GPU, attr.Format)
		if err != nil {
			log.W(ctx, "Vertex attribute format %v is not readable by the vertex fetch unit", attr.Format)
			return ErrBadPipelineData
		}

		comps := [4]genhw.VFComp{
			genhw.VFCompStore0,
			genhw.VFCompStore0,
			genhw.VFCompStore0,
			genhw.VFCompStore1FP,
		}
		if attr.Format.IsInt() {
			comps[3] = genhw.VFCompStore1Int
		}
		switch attr.Format.Channels() {
		case 4:
			comps[3] = genhw.VFCompStoreSrc
			fallthrough
		case 3:
			comps[2] = genhw.VFCompStoreSrc
			fallthrough
		case 2:
			comps[1] = genhw.VFCompStoreSrc
			fallthrough
		case 1:
			comps[0] = genhw.VFCompStoreSrc
		}

		w[0] = genhw.PackVEState0(attr.Binding, true, hw, attr.Offset)
		w[1] = genhw.PackVEState1(comps[0], comps[1], comps[2], comps[3])
		w = w[2:]
	}

	if useVID || useIID {
		c0 := genhw.VFCompStore0
		if useVID {
			c0 = genhw.VFCompStoreVID
		}
		c1 := genhw.VFCompNoStore
		if useIID {
			c1 = genhw.VFCompStoreIID
		}
		w[0] = genhw.PackVEState0(0, true, 0, 0)
		w[1] = genhw.PackVEState1(c0, c1, genhw.VFCompNoStore, genhw.VFCompNoStore)
	}

	return nil
}
