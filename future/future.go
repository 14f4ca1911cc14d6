// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrNilFunc is returned by Then when no continuation is supplied.
var ErrNilFunc = errors.New("A continuation function is required")

// Future is the consumer side of a Deferred.  The zero value is not usable; obtain
// instances through Deferred.Future, Resolved, or Rejected.
type Future struct {
	done  chan struct{}
	value interface{}
	err   error
}

// Done returns a channel that is closed once this Future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Settled tests if this Future has a result.  This method never blocks.
func (f *Future) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the settled value and error without blocking.  The final return
// is false if this Future has not settled yet, in which case the value and error are nil.
func (f *Future) Result() (interface{}, error, bool) {
	if f.Settled() {
		return f.value, f.err, true
	}

	return nil, nil, false
}

// Await blocks until either this Future settles or the context is done.  A done context
// produces the context's error, and the Future is left untouched.
func (f *Future) Await(ctx context.Context) (interface{}, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Deferred is the producer side of a Future.  It transitions from pending to settled
// exactly once.
type Deferred struct {
	settled atomic.Bool
	future  *Future
}

// New creates a pending Deferred.
func New() *Deferred {
	return &Deferred{
		future: &Future{
			done: make(chan struct{}),
		},
	}
}

// Future returns the consumer view of this Deferred.  The same instance is returned
// on every call.
func (d *Deferred) Future() *Future {
	return d.future
}

// Settle records both a value and an error.  Only the first call to Settle, Resolve, or Reject
// has any effect, and only that call returns true.
func (d *Deferred) Settle(value interface{}, err error) bool {
	if !d.settled.CompareAndSwap(false, true) {
		return false
	}

	d.future.value = value
	d.future.err = err
	close(d.future.done)
	return true
}

// Resolve settles this Deferred successfully with the given value.
func (d *Deferred) Resolve(value interface{}) bool {
	return d.Settle(value, nil)
}

// Reject settles this Deferred with a failure.  A nil error is legal, though it
// makes the result indistinguishable from Resolve(nil).
func (d *Deferred) Reject(err error) bool {
	return d.Settle(nil, err)
}

// Resolved returns a Future that has already settled with the given value.
func Resolved(value interface{}) *Future {
	d := New()
	d.Resolve(value)
	return d.future
}

// Rejected returns a Future that has already settled with the given error.
func Rejected(err error) *Future {
	d := New()
	d.Reject(err)
	return d.future
}

// Then produces a downstream Future that settles with the result of fn applied to the value of f.
// Failures of f skip fn and propagate unchanged.  If ctx is done before f settles, the downstream
// Future is rejected with the context's error.
func Then(ctx context.Context, f *Future, fn func(interface{}) (interface{}, error)) *Future {
	if fn == nil {
		return Rejected(ErrNilFunc)
	}

	next := New()
	go func() {
		value, err := f.Await(ctx)
		if err != nil {
			next.Reject(err)
			return
		}

		next.Settle(fn(value))
	}()

	return next.future
}
