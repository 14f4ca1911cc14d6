// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"bytes"
	"io"
	"net/http"
)

// SetBody installs b as the given request's entity body, along with a GetBody function so that
// the transport can replay the body if necessary.  A nil slice removes any body, while an empty
// slice sends an explicitly empty body.
func SetBody(r *http.Request, b []byte) {
	switch {
	case b == nil:
		r.Body = nil
		r.GetBody = nil
		r.ContentLength = 0

	case len(b) == 0:
		r.Body = http.NoBody
		r.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
		r.ContentLength = 0

	default:
		r.Body = io.NopCloser(bytes.NewReader(b))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}

		r.ContentLength = int64(len(b))
	}
}
