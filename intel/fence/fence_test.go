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

package fence

import (
	"context"
	"testing"
	"time"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/fault"
	"github.com/google/gapid/core/log"
)

type fakeBuffer struct {
	busy    bool
	waitErr error
	waits   int
}

func (b *fakeBuffer) Busy() bool { return b.busy }

func (b *fakeBuffer) Wait(ctx context.Context, timeout time.Duration) error {
	b.waits++
	return b.waitErr
}

func TestStatus(t *testing.T) {
	ctx := log.Testing(t)

	f := New()
	assert.For(ctx, "no submission").ThatError(f.Status()).Equals(ErrUnavailable)

	b := &fakeBuffer{busy: true}
	f.Attach(b)
	assert.For(ctx, "busy").ThatError(f.Status()).Equals(ErrNotReady)

	b.busy = false
	assert.For(ctx, "idle").ThatError(f.Status()).Succeeded()
}

func TestWait(t *testing.T) {
	ctx := log.Testing(t)

	f := New()
	assert.For(ctx, "no submission").ThatError(f.Wait(ctx, time.Second)).Equals(ErrUnavailable)

	b := &fakeBuffer{}
	f.Attach(b)
	assert.For(ctx, "completed").ThatError(f.Wait(ctx, time.Second)).Succeeded()
	assert.For(ctx, "waited once").ThatInteger(b.waits).Equals(1)

	b.waitErr = fault.Const("timed out")
	assert.For(ctx, "timed out").ThatError(f.Wait(ctx, time.Second)).Equals(ErrNotReady)
}

func TestAttachReplacesSubmission(t *testing.T) {
	ctx := log.Testing(t)

	f := New()
	f.Attach(&fakeBuffer{busy: true})
	assert.For(ctx, "first").ThatError(f.Status()).Equals(ErrNotReady)

	f.Attach(&fakeBuffer{})
	assert.For(ctx, "second").ThatError(f.Status()).Succeeded()
}

func TestWaitAll(t *testing.T) {
	ctx := log.Testing(t)

	ready := New()
	ready.Attach(&fakeBuffer{})
	stuck := New()
	stuck.Attach(&fakeBuffer{waitErr: fault.Const("timed out")})

	fences := []*Fence{ready, stuck}
	assert.For(ctx, "wait all").
		ThatError(WaitAll(ctx, fences, true, time.Second)).Equals(ErrNotReady)
	assert.For(ctx, "wait any").
		ThatError(WaitAll(ctx, fences, false, time.Second)).Succeeded()

	assert.For(ctx, "all ready").
		ThatError(WaitAll(ctx, []*Fence{ready, ready}, true, time.Second)).Succeeded()
	assert.For(ctx, "none ready, wait any").
		ThatError(WaitAll(ctx, []*Fence{stuck, stuck}, false, time.Second)).Equals(ErrNotReady)
	assert.For(ctx, "empty").
		ThatError(WaitAll(ctx, nil, true, time.Second)).Succeeded()
}
