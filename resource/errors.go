// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"net/http"

	"github.com/xmidt-org/farresource/xhttp"
)

// ErrGone is the failure for a resource whose server answered 410 Gone.  Once a resource
// is gone, the Next future of its far reference is rejected with this error.
var ErrGone error = &xhttp.Error{
	Code: http.StatusGone,
	Text: "Resource Gone",
}

// RequestFailedError is the failure for any completed HTTP transaction whose status was
// neither 200 nor 410.  The response body is not retained.
type RequestFailedError struct {
	Method string
	Code   int
}

func (e *RequestFailedError) StatusCode() int {
	return e.Code
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("http %s failed with status: %d", e.Method, e.Code)
}

// TransportError indicates that no HTTP status was ever obtained, e.g. a network failure,
// a canceled context, an unparseable URL, or a payload that could not be serialized.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http %s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a 200 response whose body could not be read or unserialized.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
