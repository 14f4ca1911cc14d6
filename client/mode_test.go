// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/farresource/xhttp"
)

func TestParseMode(t *testing.T) {
	testData := []struct {
		value       string
		expected    Mode
		expectError bool
	}{
		{"", Uniform, false},
		{"uniform", Uniform, false},
		{"Anonymous", Anonymous, false},
		{"CREDENTIALED", Credentialed, false},
		{"nosuch", Uniform, true},
	}

	for _, record := range testData {
		t.Run(record.value, func(t *testing.T) {
			assert := assert.New(t)
			actual, err := ParseMode(record.value)
			assert.Equal(record.expected, actual)
			assert.Equal(record.expectError, err != nil)

			var m Mode = Credentialed
			err = m.UnmarshalText([]byte(record.value))
			if record.expectError {
				assert.Error(err)
				assert.Equal(Credentialed, m)
			} else {
				assert.NoError(err)
				assert.Equal(record.expected, m)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("uniform", Uniform.String())
	assert.Equal("anonymous", Anonymous.String())
	assert.Equal("credentialed", Credentialed.String())
	assert.Equal("Mode(17)", Mode(17).String())
}

func testModeDecorate(t *testing.T, m Mode, expected http.Header) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		original, _ = http.NewRequest("GET", "http://example.test/", nil)
		actual      http.Header

		next = xhttp.RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
			actual = request.Header
			return &http.Response{StatusCode: http.StatusOK, Request: request}, nil
		})
	)

	original.Header.Set("Cookie", "session=1")
	original.Header.Set("Authorization", "Basic abc")
	original.Header.Set("Origin", "http://origin.test")
	original.Header.Set("Referer", "http://origin.test/page")
	original.Header.Set("Accept", "text/plain")

	response, err := m.decorate(next).RoundTrip(original)
	require.NoError(err)
	require.NotNil(response)
	assert.Equal(expected, actual)

	// the caller's request is left alone
	assert.Equal("session=1", original.Header.Get("Cookie"))
	assert.Equal("Basic abc", original.Header.Get("Authorization"))
}

func TestModeDecorate(t *testing.T) {
	t.Run("Uniform", func(t *testing.T) {
		testModeDecorate(t, Uniform, http.Header{
			"Accept": {"text/plain"},
		})
	})

	t.Run("Anonymous", func(t *testing.T) {
		testModeDecorate(t, Anonymous, http.Header{
			"Accept":  {"text/plain"},
			"Origin":  {"http://origin.test"},
			"Referer": {"http://origin.test/page"},
		})
	})

	t.Run("Credentialed", func(t *testing.T) {
		testModeDecorate(t, Credentialed, http.Header{
			"Accept":        {"text/plain"},
			"Authorization": {"Basic abc"},
			"Cookie":        {"session=1"},
			"Origin":        {"http://origin.test"},
			"Referer":       {"http://origin.test/page"},
		})
	})
}
