// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ugorji/go/codec"
)

const (
	TextCodecName    = "text"
	JSONCodecName    = "json"
	MsgpackCodecName = "msgpack"
)

// Codec is a named Serializer/Unserializer pair.
type Codec struct {
	Name        string
	Serialize   Serializer
	Unserialize Unserializer
}

var mapType = reflect.TypeOf(map[string]interface{}(nil))

func newJSONHandle() codec.Handle {
	h := new(codec.JsonHandle)
	h.TypeInfos = codec.NewTypeInfos([]string{"json"})
	h.MapType = mapType
	return h
}

func newMsgpackHandle() codec.Handle {
	h := new(codec.MsgpackHandle)
	h.TypeInfos = codec.NewTypeInfos([]string{"msgpack"})
	h.MapType = mapType
	h.WriteExt = true
	h.RawToString = true
	return h
}

// TextCodec is the default codec, using DefaultSerialize and DefaultUnserialize.
func TextCodec() Codec {
	return Codec{
		Name:        TextCodecName,
		Serialize:   DefaultSerialize,
		Unserialize: DefaultUnserialize,
	}
}

// JSONCodec encodes payloads as JSON.  Objects decode as map[string]interface{}.
func JSONCodec() Codec {
	return handleCodec(JSONCodecName, newJSONHandle())
}

// MsgpackCodec encodes payloads as msgpack.  Objects decode as map[string]interface{}, and
// strings decode as string rather than []byte.
func MsgpackCodec() Codec {
	return handleCodec(MsgpackCodecName, newMsgpackHandle())
}

// handleCodec builds a Codec around a ugorji handle.  A nil payload sends no body, and an
// empty response body unserializes to nil.
func handleCodec(name string, h codec.Handle) Codec {
	return Codec{
		Name: name,
		Serialize: func(v interface{}) ([]byte, error) {
			if v == nil {
				return nil, nil
			}

			var b []byte
			if err := codec.NewEncoderBytes(&b, h).Encode(v); err != nil {
				return nil, err
			}

			return b, nil
		},
		Unserialize: func(body []byte) (interface{}, error) {
			if len(body) == 0 {
				return nil, nil
			}

			var v interface{}
			if err := codec.NewDecoderBytes(body, h).Decode(&v); err != nil {
				return nil, err
			}

			return v, nil
		},
	}
}

// CodecByName looks up one of the codecs in this package, ignoring case.  The empty string
// selects TextCodec.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", TextCodecName:
		return TextCodec(), nil
	case JSONCodecName:
		return JSONCodec(), nil
	case MsgpackCodecName:
		return MsgpackCodec(), nil
	default:
		return Codec{}, fmt.Errorf("Unsupported codec: %s", name)
	}
}
