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
	"io"

	"github.com/google/gapid/core/data/binary"
	"github.com/google/gapid/core/fault"

	"github.com/wangxuejing/VulkanSamples/intel/genhw"
)

const (
	// ErrUnknownCommand is returned by Disassemble for a header word
	// this compiler never emits.
	ErrUnknownCommand = fault.Const("unknown command in command block")
	// ErrTruncatedCommand is returned by Disassemble when a command's
	// payload extends past the end of the stream.
	ErrTruncatedCommand = fault.Const("truncated command in command block")
)

// Record is one decoded command: its opcode and payload words.
type Record struct {
	Cmd     genhw.Cmd
	Payload []uint32
}

func (r Record) String() string {
	return fmt.Sprintf("%v len=%d", r.Cmd, 1+len(r.Payload))
}

// EncodeCommands writes the pipeline's command block to w, one word at
// a time.
func (p *Pipeline) EncodeCommands(w binary.Writer) error {
	for _, v := range p.cmds {
		w.Uint32(v)
	}
	return w.Error()
}

// Disassemble decodes a serialized command block back into its records,
// stopping at EOF. Every emitted command declares its own length in its
// header word, so the block can be walked without any side tables.
func Disassemble(r binary.Reader) ([]Record, error) {
	records := []Record{}
	for {
		hdr := r.Uint32()
		switch err := r.Error(); err {
		case nil:
		case io.EOF:
			return records, nil
		default:
			return nil, err
		}

		cmd, length := genhw.SplitHeader(hdr)
		if !cmd.Known() {
			return nil, ErrUnknownCommand
		}

		payload := make([]uint32, length-1)
		for i := range payload {
			payload[i] = r.Uint32()
		}
		if err := r.Error(); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncatedCommand
			}
			return nil, err
		}
		records = append(records, Record{Cmd: cmd, Payload: payload})
	}
}
