// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttptest

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
)

// NewResponse provides a convenient way of synthesizing a client response, similar to httptest.NewRequest.
// This function initializes most members to useful values for testing with.
func NewResponse(statusCode int, body []byte) *http.Response {
	return &http.Response{
		Status:        strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// NewResponseBody synthesizes a response whose body is the given reader, which is typically
// a *MockBody used to simulate read failures.
func NewResponseBody(statusCode int, body io.ReadCloser) *http.Response {
	response := NewResponse(statusCode, nil)
	response.Body = body
	response.ContentLength = -1
	return response
}
