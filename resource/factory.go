// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"github.com/xmidt-org/farresource/client"
)

// Factory provides a common way to configure a Maker from external sources such as viper.
// Options passed to NewMaker are applied after the configured ones, so they take precedence.
type Factory struct {
	// Codec names the Serializer/Unserializer pair.  See CodecByName.
	Codec string `json:"codec"`

	// Client configures the HTTP transport, including its credential mode.
	Client client.Config `json:"client"`
}

// NewMaker produces a Maker from this factory's configuration.  The outbound measures
// instrument the HTTP transport and may be the zero value.
func (f Factory) NewMaker(om client.OutboundMeasures, options ...Option) (*Maker, error) {
	c, err := CodecByName(f.Codec)
	if err != nil {
		return nil, err
	}

	hc, err := f.Client.NewClient(om)
	if err != nil {
		return nil, err
	}

	return NewMaker(
		append([]Option{WithCodec(c), WithClient(hc)}, options...)...,
	), nil
}
