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
	"bytes"
	"testing"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/data/endian"
	"github.com/google/gapid/core/log"
	"github.com/google/gapid/core/os/device"

	"github.com/wangxuejing/VulkanSamples/intel/format"
	"github.com/wangxuejing/VulkanSamples/intel/genhw"
)

func TestEncodeDisassembleRoundTrip(t *testing.T) {
	ctx := log.Testing(t)

	p, err := CreateGraphicsPipeline(ctx, gen7GT2, []CreateInfo{
		vsStage(),
		fsStage(),
		VertexInputInfo{
			Bindings:   []VertexBinding{{Stride: 16}},
			Attributes: []VertexAttribute{{Format: format.R32G32B32A32SFloat}},
		},
		InputAssemblyInfo{Topology: TriangleList},
	})
	assert.For(ctx, "err").ThatError(err).Succeeded()

	buf := &bytes.Buffer{}
	err = p.EncodeCommands(endian.Writer(buf, device.LittleEndian))
	assert.For(ctx, "encode err").ThatError(err).Succeeded()
	assert.For(ctx, "encoded size").ThatInteger(buf.Len()).Equals(4 * len(p.Commands()))

	records, err := Disassemble(endian.Reader(buf, device.LittleEndian))
	assert.For(ctx, "decode err").ThatError(err).Succeeded()

	cmds := make([]genhw.Cmd, len(records))
	for i, r := range records {
		cmds[i] = r.Cmd
	}
	assert.For(ctx, "commands").ThatSlice(cmds).Equals([]genhw.Cmd{
		genhw.CmdVertexElements,
		genhw.CmdURBVS,
		genhw.CmdURBGS,
		genhw.CmdURBHS,
		genhw.CmdURBDS,
		genhw.CmdPushConstAllocVS,
		genhw.CmdPushConstAllocPS,
		genhw.CmdPushConstAllocHS,
		genhw.CmdPushConstAllocDS,
		genhw.CmdPushConstAllocGS,
		genhw.CmdHS,
		genhw.CmdTE,
		genhw.CmdDS,
	})

	// The records, reassembled, give back the original block.
	words := []uint32{}
	for _, r := range records {
		words = append(words, genhw.Header(r.Cmd, 1+len(r.Payload)))
		words = append(words, r.Payload...)
	}
	assert.For(ctx, "round trip").ThatSlice(words).Equals(p.Commands())
}

func TestDisassembleEmpty(t *testing.T) {
	ctx := log.Testing(t)
	records, err := Disassemble(endian.Reader(&bytes.Buffer{}, device.LittleEndian))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "records").ThatSlice(records).IsEmpty()
}

func TestDisassembleUnknownCommand(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, device.LittleEndian)
	w.Uint32(0xdeadbe00)
	w.Uint32(0)

	_, err := Disassemble(endian.Reader(buf, device.LittleEndian))
	assert.For(ctx, "err").ThatError(err).Equals(ErrUnknownCommand)
}

func TestDisassembleTruncatedCommand(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, device.LittleEndian)
	w.Uint32(genhw.Header(genhw.CmdURB, 3))
	w.Uint32(0)
	// The header promises one more word.

	_, err := Disassemble(endian.Reader(buf, device.LittleEndian))
	assert.For(ctx, "err").ThatError(err).Equals(ErrTruncatedCommand)
}
