// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package far provides far references: handles to objects that live elsewhere, whose
// operations are dispatched asynchronously and whose eventual state is itself a Future.
package far

import (
	"context"
	"net/http"

	"github.com/xmidt-org/farresource/future"
)

// Dispatcher carries out one operation against the remote object.  The args are interpreted
// by the Dispatcher.  Implementations must return a non-nil Future and must not block.
type Dispatcher func(ctx context.Context, op string, args []interface{}) *future.Future

// Ref is a far reference.  It pairs a Dispatcher with a "next" Future that settles only
// if the referenced object transitions to some permanent state, such as being gone.
//
// A Ref is immutable and safe for concurrent use.
type Ref struct {
	dispatch Dispatcher
	next     *future.Future
}

// Make creates a far reference.  If next is nil, the Ref never transitions.
func Make(d Dispatcher, next *future.Future) *Ref {
	if next == nil {
		next = future.New().Future()
	}

	return &Ref{
		dispatch: d,
		next:     next,
	}
}

// Dispatch sends op, with its arguments, to the remote object.  The returned Future
// settles once the remote operation completes.
func (r *Ref) Dispatch(ctx context.Context, op string, args ...interface{}) *future.Future {
	return r.dispatch(ctx, op, args)
}

// Get dispatches http.MethodGet.
func (r *Ref) Get(ctx context.Context, args ...interface{}) *future.Future {
	return r.dispatch(ctx, http.MethodGet, args)
}

// Put dispatches http.MethodPut.
func (r *Ref) Put(ctx context.Context, args ...interface{}) *future.Future {
	return r.dispatch(ctx, http.MethodPut, args)
}

// Post dispatches http.MethodPost.
func (r *Ref) Post(ctx context.Context, args ...interface{}) *future.Future {
	return r.dispatch(ctx, http.MethodPost, args)
}

// Delete dispatches http.MethodDelete.
func (r *Ref) Delete(ctx context.Context, args ...interface{}) *future.Future {
	return r.dispatch(ctx, http.MethodDelete, args)
}

// Next returns the Future describing this reference's eventual state.
func (r *Ref) Next() *future.Future {
	return r.next
}

// Broken returns the error this reference's next state settled with, or nil if
// the reference is still live.
func (r *Ref) Broken() error {
	_, err, _ := r.next.Result()
	return err
}
