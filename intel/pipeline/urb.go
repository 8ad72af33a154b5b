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
	"fmt"

	"github.com/wangxuejing/VulkanSamples/intel/genhw"
	"github.com/wangxuejing/VulkanSamples/intel/gpu"
	"github.com/wangxuejing/VulkanSamples/intel/shader"
)

// urbAllocator partitions the on-chip URB between the vertex and
// geometry stages and emits the partition as command words. Each
// hardware generation has its own algorithm; the variant is selected
// once per compile from the GPU descriptor.
type urbAllocator interface {
	alloc(p *Pipeline)
}

func urbAllocatorFor(info gpu.Info) urbAllocator {
	if info.AtLeast(gpu.Gen7) {
		return urbGen7{info}
	}
	return urbGen6{info}
}

// urbEntrySizes returns the URB entry sizes of the vertex and geometry
// stages in bytes. An entry holds one 4-component 32-bit value per
// attribute.
func urbEntrySizes(p *Pipeline) (vs, gs int) {
	vs = p.VS.OutCount
	if p.VS.InCount > vs {
		vs = p.VS.InCount
	}
	gs = p.GS.OutCount
	return vs * 16, gs * 16
}

// urbSplit splits the usable URB space between the two stages: half
// each when a geometry shader is active, everything to the vertex stage
// otherwise.
func urbSplit(p *Pipeline, total int) (vsSize, gsSize int) {
	if p.ActiveStages&shader.GeometryFlag != 0 {
		return total / 2, total / 2
	}
	return total, 0
}

type urbGen6 struct {
	info gpu.Info
}

// alloc emits a single 3DSTATE_URB command. Gen6 allocates in 1024-bit
// rows from a 32KB pool (64KB on GT2).
func (a urbGen6) alloc(p *Pipeline) {
	urbSize := 32 * 1024
	if a.info.GT == 2 {
		urbSize = 64 * 1024
	}

	vsEntrySize, gsEntrySize := urbEntrySizes(p)
	vsSize, gsSize := urbSplit(p, urbSize)

	vsAlloc := (vsEntrySize + 128 - 1) / 128
	gsAlloc := (gsEntrySize + 128 - 1) / 128
	if vsAlloc == 0 {
		vsAlloc = 1
	}
	if gsAlloc == 0 {
		gsAlloc = 1
	}
	// The hardware accepts [1, 5] rows per entry. More attributes than
	// fit in 5 rows cannot pass the binding table bound, so this is a
	// compiler defect.
	if vsAlloc > 5 || gsAlloc > 5 {
		panic(fmt.Errorf("gen6 urb entry allocation out of range: vs %d gs %d rows", vsAlloc, gsAlloc))
	}

	// Entry counts are programmed in multiples of 4. The VS range is
	// [24, 256], the GS range [0, 256].
	vsCount := (vsSize / 128 / vsAlloc) &^ 3
	if vsCount > 256 {
		vsCount = 256
	}
	if vsCount < 24 {
		panic(fmt.Errorf("gen6 vs urb entry count %d below hardware minimum 24", vsCount))
	}
	gsCount := (gsSize / 128 / gsAlloc) &^ 3
	if gsCount > 256 {
		gsCount = 256
	}

	dw := p.alloc(3)
	dw[0] = genhw.Header(genhw.CmdURB, 3)
	dw[1] = genhw.PackURBGen6DW1(uint32(vsAlloc), uint32(vsCount))
	dw[2] = genhw.PackURBGen6DW2(uint32(gsAlloc), uint32(gsCount))
}

type urbGen7 struct {
	info gpu.Info
}

// alloc emits the four gen7 3DSTATE_URB_* commands. Gen7 allocates in
// 512-bit rows; the head of the URB is reserved for the push constant
// buffers and subtracted before the split. The hull and domain stages
// receive zero-sized regions at the tail, but the hardware still needs
// their commands present.
func (a urbGen7) alloc(p *Pipeline) {
	var urbSize int
	switch a.info.GT {
	case 3:
		urbSize = 512 * 1024
	case 2:
		urbSize = 256 * 1024
	default:
		urbSize = 128 * 1024
	}
	urbOffset := 16 * 1024
	if a.info.GT == 3 {
		urbOffset = 32 * 1024
	}

	vsEntrySize, gsEntrySize := urbEntrySizes(p)
	vsSize, gsSize := urbSplit(p, urbSize-urbOffset)

	vsAlloc := (vsEntrySize + 64 - 1) / 64
	gsAlloc := (gsEntrySize + 64 - 1) / 64
	if vsAlloc == 0 {
		vsAlloc = 1
	}
	if gsAlloc == 0 {
		gsAlloc = 1
	}

	// 5-row entries hit a URB banking conflict; round up to 6.
	if vsAlloc == 5 {
		vsAlloc = 6
	}

	// Entry counts are programmed in multiples of 8.
	vsCount := (vsSize / 64 / vsAlloc) &^ 7
	if vsCount < 32 {
		panic(fmt.Errorf("gen7 vs urb entry count %d below hardware minimum 32", vsCount))
	}
	gsCount := (gsSize / 64 / gsAlloc) &^ 7

	var maxVSCount, maxGSCount int
	if a.info.AtLeast(gpu.Gen75) {
		maxVSCount, maxGSCount = 640, 256
		if a.info.GT >= 2 {
			maxVSCount, maxGSCount = 1664, 640
		}
	} else {
		maxVSCount, maxGSCount = 512, 192
		if a.info.GT == 2 {
			maxVSCount, maxGSCount = 704, 320
		}
	}
	if vsCount > maxVSCount {
		vsCount = maxVSCount
	}
	if gsCount > maxGSCount {
		gsCount = maxGSCount
	}

	dw := p.alloc(2 * 4)
	dw[0] = genhw.Header(genhw.CmdURBVS, 2)
	dw[1] = genhw.PackURBGen7DW1(uint32(urbOffset/8192), uint32(vsAlloc), uint32(vsCount))

	// The GS region follows the VS region; HS and DS sit zero-sized at
	// the tail.
	if gsSize > 0 {
		urbOffset += vsSize
	}
	dw[2] = genhw.Header(genhw.CmdURBGS, 2)
	dw[3] = genhw.PackURBGen7DW1(uint32(urbOffset/8192), uint32(gsAlloc), uint32(gsCount))

	dw[4] = genhw.Header(genhw.CmdURBHS, 2)
	dw[5] = genhw.PackURBGen7DW1(uint32(urbOffset/8192), 1, 0)

	dw[6] = genhw.Header(genhw.CmdURBDS, 2)
	dw[7] = genhw.PackURBGen7DW1(uint32(urbOffset/8192), 1, 0)
}
