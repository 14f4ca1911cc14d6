// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"
)

// canonicalize preprocesses header keys just once.  This allows the header to be read in
// from sources that do not use the http.Header methods, such as unmarshaled configuration.
func canonicalize(extra http.Header) http.Header {
	preprocessed := make(http.Header, len(extra))
	for k, v := range extra {
		preprocessed[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	return preprocessed
}

// StaticHeaders returns an Alice-style constructor that emits a static set of headers
// into every response.  If the set of headers is empty, the constructor does no
// decoration.
func StaticHeaders(extra http.Header) func(http.Handler) http.Handler {
	if len(extra) > 0 {
		extra = canonicalize(extra)
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
				header := response.Header()
				for k, v := range extra {
					header[k] = v
				}

				next.ServeHTTP(response, request)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return next
	}
}

// StaticRequestHeaders is the client-side analog of StaticHeaders.  It decorates a RoundTripper
// so that every outbound request carries the given headers.  Each request is cloned before
// modification.  If the set of headers is empty, next is returned undecorated.
func StaticRequestHeaders(extra http.Header, next http.RoundTripper) http.RoundTripper {
	if len(extra) == 0 {
		return next
	}

	extra = canonicalize(extra)
	return RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
		request = request.Clone(request.Context())
		for k, v := range extra {
			request.Header[k] = v
		}

		return next.RoundTrip(request)
	})
}
