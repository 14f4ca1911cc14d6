// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecByName(t *testing.T) {
	for _, name := range []string{"", "text", "TEXT", "json", "Json", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			c, err := CodecByName(name)
			assert.NoError(err)
			assert.NotEmpty(c.Name)
			assert.NotNil(c.Serialize)
			assert.NotNil(c.Unserialize)
		})
	}

	_, err := CodecByName("xml")
	assert.Error(t, err)
}

func testHandleCodec(t *testing.T, c Codec) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	body, err := c.Serialize(nil)
	assert.NoError(err)
	assert.Nil(body)

	value, err := c.Unserialize(nil)
	assert.NoError(err)
	assert.Nil(value)

	body, err = c.Serialize(map[string]interface{}{"name": "far", "kind": "resource"})
	require.NoError(err)
	require.NotEmpty(body)

	value, err = c.Unserialize(body)
	require.NoError(err)
	assert.Equal(map[string]interface{}{"name": "far", "kind": "resource"}, value)

	body, err = c.Serialize("plain")
	require.NoError(err)
	value, err = c.Unserialize(body)
	require.NoError(err)
	assert.Equal("plain", value)
}

func TestJSONCodec(t *testing.T) {
	c := JSONCodec()
	assert.Equal(t, JSONCodecName, c.Name)
	testHandleCodec(t, c)

	body, err := c.Serialize("plain")
	assert.NoError(t, err)
	assert.JSONEq(t, `"plain"`, string(body))

	_, err = c.Unserialize([]byte("{not json"))
	assert.Error(t, err)
}

func TestMsgpackCodec(t *testing.T) {
	c := MsgpackCodec()
	assert.Equal(t, MsgpackCodecName, c.Name)
	testHandleCodec(t, c)
}

func TestTextCodec(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = TextCodec()
	)

	assert.Equal(TextCodecName, c.Name)
	body, err := c.Serialize(42)
	assert.NoError(err)
	assert.Equal([]byte("42"), body)

	value, err := c.Unserialize([]byte("42"))
	assert.NoError(err)
	assert.Equal("42", value)
}
