// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCoder is implemented by errors that describe a completed HTTP transaction.
// It is the same interface go-kit's error encoder looks for.
type StatusCoder interface {
	StatusCode() int
}

// StatusCodeOf returns the status code of the first StatusCoder in err's chain.
func StatusCodeOf(err error) (int, bool) {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), true
	}

	return 0, false
}

// Error is an HTTP-specific carrier of error information, used for failures that are fully
// described by a status.  It implements go-kit's StatusCoder and Headerer, and json.Marshaler
// so that go-kit's default error encoder emits a JSON message.
type Error struct {
	Code   int
	Header http.Header
	Text   string
}

func (e *Error) StatusCode() int {
	return e.Code
}

func (e *Error) Headers() http.Header {
	return e.Header
}

func (e *Error) Error() string {
	return e.Text
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"code": %d, "text": "%s"}`, e.Code, e.Text)), nil
}

// WriteErrorf writes a JSON message of the form {"code": %d, "message": "%s"} with the given status code.
// fmt.Sprintf is used to turn the format and parameters into a single string for the message.
func WriteErrorf(response http.ResponseWriter, code int, format string, parameters ...interface{}) (int, error) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(code)

	return fmt.Fprintf(
		response,
		`{"code": %d, "message": "%s"}`,
		code,
		fmt.Sprintf(format, parameters...),
	)
}
