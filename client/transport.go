// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"crypto/tls"
	"net/http"
	"time"
)

// TransportConfig holds the configurable subset of http.Transport.  Zero values leave the
// net/http defaults in place.
type TransportConfig struct {
	TLSHandshakeTimeout    time.Duration `json:"tlsHandshakeTimeout,omitempty"`
	DisableKeepAlives      bool          `json:"disableKeepAlives,omitempty"`
	DisableCompression     bool          `json:"disableCompression,omitempty"`
	MaxIdleConns           int           `json:"maxIdleConns,omitempty"`
	MaxIdleConnsPerHost    int           `json:"maxIdleConnsPerHost,omitempty"`
	MaxConnsPerHost        int           `json:"maxConnsPerHost,omitempty"`
	IdleConnTimeout        time.Duration `json:"idleConnTimeout,omitempty"`
	ResponseHeaderTimeout  time.Duration `json:"responseHeaderTimeout,omitempty"`
	ExpectContinueTimeout  time.Duration `json:"expectContinueTimeout,omitempty"`
	MaxResponseHeaderBytes int64         `json:"maxResponseHeaderBytes,omitempty"`
}

// TLSConfig holds the configurable subset of tls.Config.
type TLSConfig struct {
	ServerName         string `json:"serverName,omitempty"`
	InsecureSkipVerify bool   `json:"insecureSkipVerify,omitempty"`
	MinVersion         uint16 `json:"minVersion,omitempty"`
	MaxVersion         uint16 `json:"maxVersion,omitempty"`
}

func (tc *TLSConfig) newTLSConfig() *tls.Config {
	if tc == nil {
		return nil
	}

	return &tls.Config{
		ServerName:         tc.ServerName,
		InsecureSkipVerify: tc.InsecureSkipVerify, // nolint: gosec
		MinVersion:         tc.MinVersion,
		MaxVersion:         tc.MaxVersion,
	}
}

// newTransport starts from a clone of http.DefaultTransport, so that proxy and dialer
// defaults are kept, then applies any configured values.
func (tc TransportConfig) newTransport(tlsConfig *TLSConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = tc.DisableKeepAlives
	t.DisableCompression = tc.DisableCompression
	t.TLSClientConfig = tlsConfig.newTLSConfig()

	if tc.TLSHandshakeTimeout > 0 {
		t.TLSHandshakeTimeout = tc.TLSHandshakeTimeout
	}

	if tc.MaxIdleConns > 0 {
		t.MaxIdleConns = tc.MaxIdleConns
	}

	if tc.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = tc.MaxIdleConnsPerHost
	}

	if tc.MaxConnsPerHost > 0 {
		t.MaxConnsPerHost = tc.MaxConnsPerHost
	}

	if tc.IdleConnTimeout > 0 {
		t.IdleConnTimeout = tc.IdleConnTimeout
	}

	if tc.ResponseHeaderTimeout > 0 {
		t.ResponseHeaderTimeout = tc.ResponseHeaderTimeout
	}

	if tc.ExpectContinueTimeout > 0 {
		t.ExpectContinueTimeout = tc.ExpectContinueTimeout
	}

	if tc.MaxResponseHeaderBytes > 0 {
		t.MaxResponseHeaderBytes = tc.MaxResponseHeaderBytes
	}

	return t
}
