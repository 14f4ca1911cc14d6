// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttptest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/stretchr/testify/mock"
)

// RequestMatcher is a predicate over client requests, used to set mocked expectations.
type RequestMatcher func(*http.Request) bool

// TransactCall is a stretchr mock Call with some extra behavior to make mocking out HTTP client behavior easier
type TransactCall struct {
	*mock.Call
}

// RespondWith is a convenience for setting a return of (response, nil).
func (tc *TransactCall) RespondWith(response *http.Response) *TransactCall {
	tc.Return(response, nil)
	return tc
}

// RespondWithError is a convenience for setting a return of (nil, err).
func (tc *TransactCall) RespondWithError(err error) *TransactCall {
	tc.Return((*http.Response)(nil), err)
	return tc
}

// MockTransactor is a stretchr mock for the Do method of an HTTP client.  It satisfies
// both xhttp.Client and http.RoundTripper.
type MockTransactor struct {
	mock.Mock
}

func (mt *MockTransactor) Do(request *http.Request) (*http.Response, error) {
	arguments := mt.Called(request)
	response, _ := arguments.Get(0).(*http.Response)
	if response != nil && response.Request == nil {
		response.Request = request
	}

	return response, arguments.Error(1)
}

func (mt *MockTransactor) RoundTrip(request *http.Request) (*http.Response, error) {
	return mt.Do(request)
}

// OnDo sets an expectation for Do with a request that satisfies all the given matchers.
func (mt *MockTransactor) OnDo(matchers ...RequestMatcher) *TransactCall {
	return &TransactCall{
		mt.On("Do", mock.MatchedBy(func(candidate *http.Request) bool {
			for _, m := range matchers {
				if !m(candidate) {
					return false
				}
			}

			return true
		})),
	}
}

// MatchMethod returns a request matcher that verifies each request has a specific method
func MatchMethod(expected string) RequestMatcher {
	return func(r *http.Request) bool {
		return strings.EqualFold(expected, r.Method)
	}
}

// MatchURLString returns a request matcher that verifies the request's URL translates to the given string.
func MatchURLString(expected string) RequestMatcher {
	return func(r *http.Request) bool {
		if r.URL == nil {
			return len(expected) == 0
		}

		return expected == r.URL.String()
	}
}

// MatchBody returns a request matcher that verifies each request has an exact body.  A nil expected
// slice matches only requests with no body at all.  The body is consumed, then replaced so that
// downstream code can still read it.
func MatchBody(expected []byte) RequestMatcher {
	return func(r *http.Request) bool {
		switch {
		case r.Body == nil:
			return expected == nil
		case r.Body == http.NoBody:
			return expected != nil && len(expected) == 0
		}

		actual, err := io.ReadAll(r.Body)
		if err != nil {
			panic(fmt.Errorf("Error while read request body for matching: %s", err))
		}

		r.Body = io.NopCloser(bytes.NewReader(actual))
		return expected != nil && bytes.Equal(expected, actual)
	}
}

// MatchHeader returns a request matcher that matches against a request header
func MatchHeader(name, expected string) RequestMatcher {
	return func(r *http.Request) bool {
		if r.Header == nil {
			return false
		}

		values := r.Header[textproto.CanonicalMIMEHeaderKey(name)]
		if len(values) == 0 {
			return len(expected) == 0
		}

		for _, actual := range values {
			if actual == expected {
				return true
			}
		}

		return false
	}
}
