// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package resource makes far references to HTTP-addressable resources.

A Maker pairs a Serializer with an Unserializer, along with the HTTP transport used to
reach resources.  Each call to Maker.Make binds a far.Ref to one URL.  Every operation
dispatched through that Ref issues exactly one HTTP request and returns a future.Future
immediately:

	maker := resource.NewMaker()
	ref := maker.Make("https://example.test/res")
	value, err := ref.Get(ctx).Await(ctx)

The first argument of a dispatch is an optional sub-resource name, sent as a "q" parameter
appended to the URL.  The second is an optional payload, serialized into the request body.

A 200 response resolves the future with the unserialized body.  A 410 response rejects the
future with ErrGone and also permanently breaks the Ref: its Next future is rejected with
ErrGone as well.  Any other status rejects the future with a *RequestFailedError.
*/
package resource
