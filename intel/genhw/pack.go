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

package genhw

import "fmt"

// The packing helpers below panic when a value exceeds its field width.
// A field overflow here is a logic defect in the compiler, never a
// consequence of caller input, so it is not reported as an error.

// Header returns the header word for the command c with the given total
// length in words. The length field holds length-2.
func Header(c Cmd, length int) uint32 {
	if length < 2 || length-2 > 0xff {
		panic(fmt.Errorf("command length %d out of range for %v", length, c))
	}
	return uint32(c) | uint32(length-2)
}

// SplitHeader splits a command header word into its fixed opcode part and
// the total command length in words.
func SplitHeader(w uint32) (Cmd, int) {
	return Cmd(w &^ 0xff), int(w&0xff) + 2
}

// ┏━━┯━━┯━━┯━━┯━━┯━━┳━━┳━━┯━━┯━━┯━━┯━━┯━━┯━━┯━━┳━━┯━━┯━━┯━━┯━━┳━━┯━━┯━━┯━━┯━━┯━━┯━━┯━━┯━━┯━━┯━━┓
// ┃b │b │b │b │b │b ┃v ┃f │f │f │f │f │f │f │f ┃f │- │- │- │- ┃o │o │o │o │o │o │o │o │o │o │o ┃
// ┃ ₅│ ₄│ ₃│ ₂│ ₁│ ₀┃  ┃ ₈│ ₇│ ₆│ ₅│ ₄│ ₃│ ₂│ ₁│ ₀│  │  │  │  ┃₁₀│ ₉│ ₈│ ₇│ ₆│ ₅│ ₄│ ₃│ ₂│ ₁│ ₀┃
// ┡━━┿━━┿━━┿━━┿━━┿━━╇━━╇━━┿━━┿━━┿━━┿━━┿━━┿━━┿━━╇━━┿━━┿━━┿━━┿━━╇━━┿━━┿━━┿━━┿━━┿━━┿━━┿━━┿━━┿━━┿━━┩
// │₃₁│₃₀│₂₉│₂₈│₂₇│₂₆│₂₅│₂₄│₂₃│₂₂│₂₁│₂₀│₁₉│₁₈│₁₇│₁₆│₁₅│₁₄│₁₃│₁₂│₁₁│₁₀│ ₉│ ₈│ ₇│ ₆│ ₅│ ₄│ ₃│ ₂│ ₁│ ₀│
// └──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┴──┘
// b: vertex buffer index, v: valid, f: surface format, o: byte offset

// PackVEState0 packs the first word of a VERTEX_ELEMENT_STATE entry.
func PackVEState0(buffer uint32, valid bool, format SurfaceFormat, offset uint32) uint32 {
	if buffer > 0x3f {
		panic(fmt.Errorf("vertex buffer index exceeds 6 bits (0x%x)", buffer))
	}
	if uint32(format) > 0x1ff {
		panic(fmt.Errorf("surface format exceeds 9 bits (0x%x)", uint32(format)))
	}
	if offset > 0x7ff {
		panic(fmt.Errorf("vertex element offset exceeds 11 bits (0x%x)", offset))
	}
	w := buffer<<26 | uint32(format)<<16 | offset
	if valid {
		w |= 1 << 25
	}
	return w
}

// PackVEState1 packs the second word of a VERTEX_ELEMENT_STATE entry:
// the four per-channel component controls at bits 28, 24, 20 and 16.
func PackVEState1(c0, c1, c2, c3 VFComp) uint32 {
	for _, c := range []VFComp{c0, c1, c2, c3} {
		if c > 0x7 {
			panic(fmt.Errorf("component control exceeds 3 bits (0x%x)", uint32(c)))
		}
	}
	return uint32(c0)<<28 | uint32(c1)<<24 | uint32(c2)<<20 | uint32(c3)<<16
}

// PackURBGen6DW1 packs the VS fields of the gen6 3DSTATE_URB command:
// the entry allocation size in 1024-bit rows (stored minus one, bits
// 23:16) and the entry count (bits 15:0).
func PackURBGen6DW1(allocSize, entryCount uint32) uint32 {
	if allocSize == 0 || allocSize-1 > 0xff {
		panic(fmt.Errorf("vs urb entry allocation size out of range (%d rows)", allocSize))
	}
	if entryCount > 0xffff {
		panic(fmt.Errorf("vs urb entry count exceeds 16 bits (%d)", entryCount))
	}
	return (allocSize-1)<<16 | entryCount
}

// PackURBGen6DW2 packs the GS fields of the gen6 3DSTATE_URB command:
// the entry count (bits 17:8) and the entry allocation size in 1024-bit
// rows, stored minus one (bits 7:0).
func PackURBGen6DW2(allocSize, entryCount uint32) uint32 {
	if allocSize == 0 || allocSize-1 > 0xff {
		panic(fmt.Errorf("gs urb entry allocation size out of range (%d rows)", allocSize))
	}
	if entryCount > 0x3ff {
		panic(fmt.Errorf("gs urb entry count exceeds 10 bits (%d)", entryCount))
	}
	return entryCount<<8 | (allocSize - 1)
}

// PackURBGen7DW1 packs the per-stage fields of a gen7 3DSTATE_URB_*
// command: the start offset in 8KB blocks (bits 29:25), the entry
// allocation size in 512-bit rows, stored minus one (bits 24:16), and
// the entry count (bits 15:0).
func PackURBGen7DW1(offset8KB, allocSize, entryCount uint32) uint32 {
	if offset8KB > 0x1f {
		panic(fmt.Errorf("urb offset exceeds 5 bits (%d)", offset8KB))
	}
	if allocSize == 0 || allocSize-1 > 0x1ff {
		panic(fmt.Errorf("urb entry allocation size out of range (%d rows)", allocSize))
	}
	if entryCount > 0xffff {
		panic(fmt.Errorf("urb entry count exceeds 16 bits (%d)", entryCount))
	}
	return offset8KB<<25 | (allocSize-1)<<16 | entryCount
}

// PackPushConstAllocDW1 packs a gen7 3DSTATE_PUSH_CONSTANT_ALLOC_*
// payload: the buffer offset in 1KB units (bits 20:16) and the buffer
// size in 1KB units (bits 4:0).
func PackPushConstAllocDW1(offset, size uint32) uint32 {
	if offset > 0x1f {
		panic(fmt.Errorf("push constant offset exceeds 5 bits (%d)", offset))
	}
	if size > 0x1f {
		panic(fmt.Errorf("push constant size exceeds 5 bits (%d)", size))
	}
	return offset<<16 | size
}
