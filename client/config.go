// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xmidt-org/farresource/xhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config describes the HTTP transport far resources dispatch through.  This is the
// equivalent of choosing which flavor of XMLHttpRequest to use.
type Config struct {
	// Timeout bounds each transaction.  Zero means no client-imposed timeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Mode selects the credential behavior.  The default is Uniform.
	Mode Mode `json:"mode,omitempty"`

	// Header is sent with every request.  Credential headers are still subject to Mode.
	Header http.Header `json:"header,omitempty"`

	// Tracing wraps the transport with OpenTelemetry instrumentation.
	Tracing bool `json:"tracing,omitempty"`

	Transport TransportConfig `json:"transport"`
	TLS       *TLSConfig      `json:"tls,omitempty"`
}

// NewClient builds an *http.Client from this configuration.  Redirects follow the net/http
// default policy.
//
// Decoration order, from the caller inward: static headers, mode filtering, metrics, tracing,
// then the http.Transport itself.
func (c Config) NewClient(om OutboundMeasures) (*http.Client, error) {
	var next http.RoundTripper = c.Transport.newTransport(c.TLS)
	if c.Tracing {
		next = otelhttp.NewTransport(next)
	}

	next = DecorateWithMetrics(om, next)
	next = c.Mode.decorate(next)
	next = xhttp.StaticRequestHeaders(c.Header, next)

	hc := &http.Client{
		Transport: next,
		Timeout:   c.Timeout,
	}

	if c.Mode == Credentialed {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}

		hc.Jar = jar
	}

	return hc, nil
}

// DecodeHook is the mapstructure hook used when unmarshaling configuration with viper.
// It understands durations, comma-delimited slices, and any encoding.TextUnmarshaler such as Mode.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// FromViper produces a Config from a (possibly nil) Viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	var c Config
	if v != nil {
		if err := v.Unmarshal(&c, viper.DecodeHook(DecodeHook())); err != nil {
			return Config{}, err
		}
	}

	return c, nil
}
