// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"net/http"

	"github.com/xmidt-org/farresource/far"
	"github.com/xmidt-org/farresource/future"
	"github.com/xmidt-org/farresource/xhttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Option represents a configuration option for a Maker
type Option func(*Maker)

// WithSerializer sets the Serializer for outbound payloads.  If nil, DefaultSerialize is used.
func WithSerializer(s Serializer) Option {
	return func(m *Maker) {
		if s == nil {
			m.serialize = DefaultSerialize
		} else {
			m.serialize = s
		}
	}
}

// WithUnserializer sets the Unserializer for response bodies.  If nil, DefaultUnserialize is used.
func WithUnserializer(u Unserializer) Option {
	return func(m *Maker) {
		if u == nil {
			m.unserialize = DefaultUnserialize
		} else {
			m.unserialize = u
		}
	}
}

// WithCodec sets both the Serializer and the Unserializer from a Codec.
func WithCodec(c Codec) Option {
	return func(m *Maker) {
		WithSerializer(c.Serialize)(m)
		WithUnserializer(c.Unserialize)(m)
	}
}

// WithClient sets the HTTP transport.  If nil, http.DefaultClient is used.  Use the client
// package to build a transport with a particular credential mode.
func WithClient(c xhttp.Client) Option {
	return func(m *Maker) {
		if c == nil {
			m.client = http.DefaultClient
		} else {
			m.client = c
		}
	}
}

// WithLogger sets the zap Logger for dispatches.  If nil, the default logger is used instead.
func WithLogger(l *zap.Logger) Option {
	return func(m *Maker) {
		if l == nil {
			m.logger = sallust.Default()
		} else {
			m.logger = l
		}
	}
}

// WithMeasures sets the metrics updated by dispatches.  If nil, nothing is recorded.
func WithMeasures(ms *Measures) Option {
	return func(m *Maker) {
		if ms == nil {
			m.measures = NewDiscardMeasures()
		} else {
			m.measures = ms
		}
	}
}

// Maker makes far references to HTTP resources.  A Maker is immutable once created and
// may be shared by any number of goroutines.
type Maker struct {
	serialize   Serializer
	unserialize Unserializer
	client      xhttp.Client
	logger      *zap.Logger
	measures    *Measures
}

// NewMaker creates a Maker.  With no options, the returned Maker makes text resources:
// payloads are sent as their string form and responses resolve to the body text.
// No I/O is performed.
func NewMaker(options ...Option) *Maker {
	m := &Maker{
		serialize:   DefaultSerialize,
		unserialize: DefaultUnserialize,
		client:      http.DefaultClient,
		logger:      sallust.Default(),
		measures:    NewDiscardMeasures(),
	}

	for _, o := range options {
		o(m)
	}

	return m
}

// Make creates a far reference for the resource at target.  The target is coerced into a
// string, so *url.URL and other fmt.Stringer values are accepted.  No I/O is performed.
//
// The returned reference's Next future settles only if the resource is ever found to be gone.
func (m *Maker) Make(target interface{}) *far.Ref {
	h := &handle{
		maker: m,
		url:   ToString(target),
		next:  future.New(),
	}

	return far.Make(h.dispatch, h.next.Future())
}
