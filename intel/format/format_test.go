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

package format

import (
	"testing"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/log"

	"github.com/wangxuejing/VulkanSamples/intel/genhw"
	"github.com/wangxuejing/VulkanSamples/intel/gpu"
)

var gen75GT2 = gpu.Info{Gen: gpu.Gen75, GT: 2}

func TestTranslate(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		format Format
		hw     genhw.SurfaceFormat
	}{
		{R32SFloat, genhw.FmtR32Float},
		{R32SInt, genhw.FmtR32Sint},
		{R32UInt, genhw.FmtR32Uint},
		{R32G32SFloat, genhw.FmtR32G32Float},
		{R32G32B32SFloat, genhw.FmtR32G32B32Float},
		{R32G32B32A32SFloat, genhw.FmtR32G32B32A32Float},
		{R32G32B32A32UInt, genhw.FmtR32G32B32A32Uint},
		{R8G8B8A8Unorm, genhw.FmtR8G8B8A8Unorm},
		{B8G8R8A8Unorm, genhw.FmtB8G8R8A8Unorm},
	} {
		hw, err := Translate(gen75GT2, test.format)
		assert.For(ctx, "err for %v", test.format).ThatError(err).Succeeded()
		assert.For(ctx, "code for %v", test.format).That(hw).Equals(test.hw)
	}
}

func TestTranslateUnsupported(t *testing.T) {
	ctx := log.Testing(t)
	for _, f := range []Format{Undefined, D24UnormS8UInt, D32SFloat, Format(999)} {
		_, err := Translate(gen75GT2, f)
		assert.For(ctx, "err for %v", f).ThatError(err).Equals(ErrUnsupported)
	}
}

func TestChannels(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		format   Format
		channels int
		integer  bool
	}{
		{R32SFloat, 1, false},
		{R32UInt, 1, true},
		{R32G32SInt, 2, true},
		{R32G32B32SFloat, 3, false},
		{R32G32B32A32SInt, 4, true},
		{R8G8B8A8Unorm, 4, false},
	} {
		assert.For(ctx, "channels of %v", test.format).
			ThatInteger(test.format.Channels()).Equals(test.channels)
		assert.For(ctx, "integer of %v", test.format).
			That(test.format.IsInt()).Equals(test.integer)
	}
}
