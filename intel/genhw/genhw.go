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

// Package genhw holds the gen6/gen7 hardware command layouts used by the
// pipeline state compiler: command header opcodes, primitive type codes,
// vertex element field layouts and the URB / push-constant allocation
// fields, together with helpers that pack them into raw command words.
package genhw

import "fmt"

const (
	cmdTypeRender = 0x3 << 29
	cmdSubtype3D  = 0x3 << 27
)

// Cmd is the fixed opcode part of a GFXPIPE 3D command header word.
// The low 8 bits of a header word hold the command length minus two.
type Cmd uint32

const (
	// Shared between gen6 and gen7.
	CmdVertexElements = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x09<<16)

	// Gen6 only.
	CmdURB = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x05<<16)

	// Gen7 only.
	CmdGS    = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x11<<16)
	CmdHS    = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x1b<<16)
	CmdTE    = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x1c<<16)
	CmdDS    = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x1d<<16)
	CmdURBVS = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x30<<16)
	CmdURBHS = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x31<<16)
	CmdURBDS = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x32<<16)
	CmdURBGS = Cmd(cmdTypeRender | cmdSubtype3D | 0x0<<24 | 0x33<<16)

	CmdPushConstAllocVS = Cmd(cmdTypeRender | cmdSubtype3D | 0x1<<24 | 0x12<<16)
	CmdPushConstAllocHS = Cmd(cmdTypeRender | cmdSubtype3D | 0x1<<24 | 0x13<<16)
	CmdPushConstAllocDS = Cmd(cmdTypeRender | cmdSubtype3D | 0x1<<24 | 0x14<<16)
	CmdPushConstAllocGS = Cmd(cmdTypeRender | cmdSubtype3D | 0x1<<24 | 0x15<<16)
	CmdPushConstAllocPS = Cmd(cmdTypeRender | cmdSubtype3D | 0x1<<24 | 0x16<<16)
)

func cmdName(c Cmd) (string, bool) {
	switch c {
	case CmdVertexElements:
		return "3DSTATE_VERTEX_ELEMENTS", true
	case CmdURB:
		return "3DSTATE_URB", true
	case CmdGS:
		return "3DSTATE_GS", true
	case CmdHS:
		return "3DSTATE_HS", true
	case CmdTE:
		return "3DSTATE_TE", true
	case CmdDS:
		return "3DSTATE_DS", true
	case CmdURBVS:
		return "3DSTATE_URB_VS", true
	case CmdURBHS:
		return "3DSTATE_URB_HS", true
	case CmdURBDS:
		return "3DSTATE_URB_DS", true
	case CmdURBGS:
		return "3DSTATE_URB_GS", true
	case CmdPushConstAllocVS:
		return "3DSTATE_PUSH_CONSTANT_ALLOC_VS", true
	case CmdPushConstAllocHS:
		return "3DSTATE_PUSH_CONSTANT_ALLOC_HS", true
	case CmdPushConstAllocDS:
		return "3DSTATE_PUSH_CONSTANT_ALLOC_DS", true
	case CmdPushConstAllocGS:
		return "3DSTATE_PUSH_CONSTANT_ALLOC_GS", true
	case CmdPushConstAllocPS:
		return "3DSTATE_PUSH_CONSTANT_ALLOC_PS", true
	default:
		return "", false
	}
}

// Known returns true if c is a command this package has a layout for.
func (c Cmd) Known() bool {
	_, ok := cmdName(c)
	return ok
}

func (c Cmd) String() string {
	if name, ok := cmdName(c); ok {
		return name
	}
	return fmt.Sprintf("Cmd(0x%08x)", uint32(c))
}

// PrimType is a hardware 3DPRIM topology code.
type PrimType uint32

const (
	PrimPointList    = PrimType(0x01)
	PrimLineList     = PrimType(0x02)
	PrimLineStrip    = PrimType(0x03)
	PrimTriList      = PrimType(0x04)
	PrimTriStrip     = PrimType(0x05)
	PrimTriFan       = PrimType(0x06)
	PrimQuadList     = PrimType(0x07)
	PrimQuadStrip    = PrimType(0x08)
	PrimLineListAdj  = PrimType(0x09)
	PrimLineStripAdj = PrimType(0x0a)
	PrimTriListAdj   = PrimType(0x0b)
	PrimTriStripAdj  = PrimType(0x0c)
	PrimRectList     = PrimType(0x0f)

	// PrimPatchList1 is the 1 control point patch list. Patch lists with
	// n control points use PrimPatchList1 + n - 1, up to n = 32.
	PrimPatchList1 = PrimType(0x20)
)

// VFComp is a vertex fetch component control code, one per channel of a
// vertex element.
type VFComp uint32

const (
	VFCompNoStore   = VFComp(0)
	VFCompStoreSrc  = VFComp(1)
	VFCompStore0    = VFComp(2)
	VFCompStore1FP  = VFComp(3)
	VFCompStore1Int = VFComp(4)
	VFCompStoreVID  = VFComp(5)
	VFCompStoreIID  = VFComp(6)
	VFCompStorePID  = VFComp(7)
)

// SurfaceFormat is a hardware SURFACEFORMAT code as accepted by the
// vertex fetch unit.
type SurfaceFormat uint32

const (
	FmtR32G32B32A32Float = SurfaceFormat(0x000)
	FmtR32G32B32A32Sint  = SurfaceFormat(0x001)
	FmtR32G32B32A32Uint  = SurfaceFormat(0x002)
	FmtR32G32B32Float    = SurfaceFormat(0x040)
	FmtR32G32B32Sint     = SurfaceFormat(0x041)
	FmtR32G32B32Uint     = SurfaceFormat(0x042)
	FmtR32G32Float       = SurfaceFormat(0x085)
	FmtR32G32Sint        = SurfaceFormat(0x086)
	FmtR32G32Uint        = SurfaceFormat(0x087)
	FmtB8G8R8A8Unorm     = SurfaceFormat(0x0c0)
	FmtR8G8B8A8Unorm     = SurfaceFormat(0x0c7)
	FmtR8G8B8A8Sint      = SurfaceFormat(0x0ca)
	FmtR8G8B8A8Uint      = SurfaceFormat(0x0cb)
	FmtR32Sint           = SurfaceFormat(0x0d6)
	FmtR32Uint           = SurfaceFormat(0x0d7)
	FmtR32Float          = SurfaceFormat(0x0d8)
)
