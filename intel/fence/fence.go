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

// Package fence wraps the busy / wait primitive of a submitted hardware
// buffer behind a fence interface.
package fence

import (
	"context"
	"time"

	"github.com/google/gapid/core/fault"
)

const (
	// ErrUnavailable is returned when the fence has no submission to
	// observe.
	ErrUnavailable = fault.Const("fence has no submitted buffer")
	// ErrNotReady is returned while the submitted buffer is still busy.
	ErrNotReady = fault.Const("fence not ready")
)

// Buffer is the hardware buffer primitive a fence observes. Busy
// reports whether the hardware is still using the buffer; Wait blocks
// until it is idle or the timeout elapses.
type Buffer interface {
	Busy() bool
	Wait(ctx context.Context, timeout time.Duration) error
}

// Fence tracks the completion of one submission.
type Fence struct {
	submitted Buffer
}

// New returns a fence with no submission attached.
func New() *Fence { return &Fence{} }

// Attach points the fence at the buffer of a new submission, replacing
// any previous one.
func (f *Fence) Attach(b Buffer) { f.submitted = b }

// Status returns nil once the submitted buffer is idle, ErrNotReady
// while it is busy, and ErrUnavailable if nothing was submitted.
func (f *Fence) Status() error {
	if f.submitted == nil {
		return ErrUnavailable
	}
	if f.submitted.Busy() {
		return ErrNotReady
	}
	return nil
}

// Wait blocks until the submitted buffer is idle. A wait that does not
// complete within the timeout returns ErrNotReady.
func (f *Fence) Wait(ctx context.Context, timeout time.Duration) error {
	if f.submitted == nil {
		return ErrUnavailable
	}
	if err := f.submitted.Wait(ctx, timeout); err != nil {
		return ErrNotReady
	}
	return nil
}

// WaitAll waits on each fence in turn. With waitAll set it returns the
// last failure, if any; without it, it returns nil as soon as any
// fence completes.
func WaitAll(ctx context.Context, fences []*Fence, waitAll bool, timeout time.Duration) error {
	var ret error
	for _, f := range fences {
		err := f.Wait(ctx, timeout)
		if !waitAll && err == nil {
			return nil
		}
		if err != nil {
			ret = err
		}
	}
	return ret
}
