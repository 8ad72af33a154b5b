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
)

// buildPushConstAlloc partitions the gen7 push constant space and emits
// one 3DSTATE_PUSH_CONSTANT_ALLOC_* command per stage. The partition is
// fixed: the vertex stage gets the whole 8KB, the tessellation and
// geometry stages get nothing. All fields are in 1KB units.
//
// The range checks guard hardware limits (buffer end within 16KB,
// offset within 15KB, size within 15KB). The allocation is not derived
// from pipeline input, so a check firing means the allocation constants
// themselves are wrong.
func (p *Pipeline) buildPushConstAlloc() {
	const cmdLen = 2
	offset := uint32(0)
	size := uint32(8192)

	end := (offset + size) / 1024
	if end > 16 {
		panic(fmt.Errorf("push constant buffer end %dKB exceeds 16KB", end))
	}
	offset = (offset + 1023) / 1024
	if offset > 15 {
		panic(fmt.Errorf("push constant buffer offset %dKB exceeds 15KB", offset))
	}
	if offset > end {
		if size != 0 {
			panic(fmt.Errorf("push constant buffer offset %dKB beyond end %dKB", offset, end))
		}
		offset = end
	}
	size = end - offset
	if size > 15 {
		panic(fmt.Errorf("push constant buffer size %dKB exceeds 15KB", size))
	}

	dw := p.alloc(cmdLen * 5)
	dw[0] = genhw.Header(genhw.CmdPushConstAllocVS, cmdLen)
	dw[1] = genhw.PackPushConstAllocDW1(offset, size)

	// The PS offset field intentionally carries the VS size value; the
	// raw words must stay bit-exact with what the hardware was validated
	// against.
	dw[2] = genhw.Header(genhw.CmdPushConstAllocPS, cmdLen)
	dw[3] = genhw.PackPushConstAllocDW1(size, size)

	dw[4] = genhw.Header(genhw.CmdPushConstAllocHS, cmdLen)
	dw[5] = genhw.PackPushConstAllocDW1(0, 0)

	dw[6] = genhw.Header(genhw.CmdPushConstAllocDS, cmdLen)
	dw[7] = genhw.PackPushConstAllocDW1(0, 0)

	dw[8] = genhw.Header(genhw.CmdPushConstAllocGS, cmdLen)
	dw[9] = genhw.PackPushConstAllocDW1(0, 0)
}
