// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNewRequest invokes http.NewRequest, panicing if an error occurs.
func mustNewRequest(method, target string, body io.Reader) *http.Request {
	r, err := http.NewRequest(method, target, body)
	if err != nil {
		panic(err)
	}

	return r
}

func testSetBodyNil(t *testing.T) {
	var (
		assert = assert.New(t)
		r      = mustNewRequest("PUT", "http://example.test/", nil)
	)

	SetBody(r, nil)
	assert.Nil(r.Body)
	assert.Nil(r.GetBody)
	assert.Zero(r.ContentLength)
}

func testSetBodyEmpty(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		r       = mustNewRequest("PUT", "http://example.test/", nil)
	)

	SetBody(r, []byte{})
	assert.Equal(http.NoBody, r.Body)
	require.NotNil(r.GetBody)
	assert.Zero(r.ContentLength)

	b, err := r.GetBody()
	assert.NoError(err)
	assert.Equal(http.NoBody, b)
}

func testSetBodyContents(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		expected = []byte("some content")
		r        = mustNewRequest("PUT", "http://example.test/", nil)
	)

	SetBody(r, expected)
	assert.Equal(int64(len(expected)), r.ContentLength)
	require.NotNil(r.Body)
	require.NotNil(r.GetBody)

	actual, err := io.ReadAll(r.Body)
	assert.NoError(err)
	assert.Equal(expected, actual)

	replay, err := r.GetBody()
	require.NoError(err)
	actual, err = io.ReadAll(replay)
	assert.NoError(err)
	assert.Equal(expected, actual)
}

func TestSetBody(t *testing.T) {
	t.Run("Nil", testSetBodyNil)
	t.Run("Empty", testSetBodyEmpty)
	t.Run("Contents", testSetBodyContents)
}
