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

import "github.com/wangxuejing/VulkanSamples/intel/genhw"

// A valid gen7 command stream must contain a state command for every
// fixed function stage, active or not. The emitters below write the
// all-zero pass-through commands for the stages this compiler never
// configures.

// buildGS emits nothing: 3DSTATE_GS carries per-draw state and is
// emitted by the command recorder.
func (p *Pipeline) buildGS() {}

func (p *Pipeline) buildHS() {
	const cmdLen = 7
	dw := p.alloc(cmdLen)
	dw[0] = genhw.Header(genhw.CmdHS, cmdLen)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}

func (p *Pipeline) buildTE() {
	const cmdLen = 4
	dw := p.alloc(cmdLen)
	dw[0] = genhw.Header(genhw.CmdTE, cmdLen)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}

func (p *Pipeline) buildDS() {
	const cmdLen = 6
	dw := p.alloc(cmdLen)
	dw[0] = genhw.Header(genhw.CmdDS, cmdLen)
	for i := 1; i < cmdLen; i++ {
		dw[i] = 0
	}
}
