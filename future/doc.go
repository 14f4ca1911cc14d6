// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package future provides a write-once deferred value and its read-only Future.

A Deferred is held by whatever produces the result.  It may be settled exactly once,
either with a value or with an error.  Any further attempt to settle it is ignored and
reported through a false return, which makes it safe for several goroutines to race
to settle the same Deferred.

A Future is handed to consumers.  It exposes a Done channel with the same semantics
as context.Context.Done(), along with blocking and non-blocking accessors for the result.
*/
package future
