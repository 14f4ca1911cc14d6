// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xmidt-org/farresource/xhttp"
)

// Mode describes how much ambient authority outbound requests carry.
type Mode int

const (
	// Uniform requests carry no cookies, no credentials, and no Origin or Referer.  This is the default.
	Uniform Mode = iota

	// Anonymous requests carry no cookies and no credentials.
	Anonymous

	// Credentialed requests keep a cookie jar and pass every header through.
	Credentialed
)

var modeNames = [...]string{"uniform", "anonymous", "credentialed"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a case-insensitive name into a Mode.  The empty string is Uniform.
func ParseMode(v string) (Mode, error) {
	if len(v) == 0 {
		return Uniform, nil
	}

	for i, name := range modeNames {
		if strings.EqualFold(name, v) {
			return Mode(i), nil
		}
	}

	return Uniform, fmt.Errorf("Invalid client mode: %s", v)
}

// UnmarshalText allows a Mode to be configured by name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err == nil {
		*m = parsed
	}

	return err
}

// strippedHeaders returns the request headers that the given mode never sends.
func (m Mode) strippedHeaders() []string {
	switch m {
	case Credentialed:
		return nil
	case Anonymous:
		return []string{"Cookie", "Authorization", "Proxy-Authorization"}
	default:
		return []string{"Cookie", "Authorization", "Proxy-Authorization", "Origin", "Referer"}
	}
}

// decorate applies this mode's header filtering to a RoundTripper.  Requests are cloned
// only when they carry a header that must be removed.
func (m Mode) decorate(next http.RoundTripper) http.RoundTripper {
	stripped := m.strippedHeaders()
	if len(stripped) == 0 {
		return next
	}

	return xhttp.RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
		cloned := false
		for _, h := range stripped {
			if _, ok := request.Header[h]; ok {
				if !cloned {
					request = request.Clone(request.Context())
					cloned = true
				}

				request.Header.Del(h)
			}
		}

		return next.RoundTrip(request)
	})
}
