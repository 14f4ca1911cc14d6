// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/farresource/client"
	"github.com/xmidt-org/farresource/resource"
)

func newTestFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(FileFlag, "", "configuration file")
	fs.String("codec", "", "codec")
	fs.String("mode", "", "mode")
	fs.Duration("timeout", 0, "timeout")
	fs.String("log-level", "", "log level")
	fs.Duration("wait", 0, "wait")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	c, err := Load(nil)
	require.NoError(err)

	assert.Equal("info", c.Log.Level)
	assert.True(c.Log.JSON)
	assert.False(c.Log.Development)
	assert.Equal(resource.TextCodecName, c.Resource.Codec)
	assert.Equal(client.Uniform, c.Resource.Client.Mode)
	assert.Zero(c.Resource.Client.Timeout)
	assert.Equal(DefaultWait, c.Wait)
}

func TestLoadConfigFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	v, err := New(ApplyDefaults(DefaultValues()))
	require.NoError(err)

	v.SetConfigType("yaml")
	require.NoError(v.ReadConfig(strings.NewReader(`
log:
  level: debug
  json: false
  outputPaths:
    - stdout
resource:
  codec: msgpack
  client:
    mode: credentialed
    timeout: 15s
    header:
      X-Test: value
    transport:
      maxIdleConns: 7
wait: 1m
`)))

	c, err := Load(v)
	require.NoError(err)

	assert.Equal("debug", c.Log.Level)
	assert.False(c.Log.JSON)
	assert.Equal([]string{"stdout"}, c.Log.OutputPaths)
	assert.Equal(resource.MsgpackCodecName, c.Resource.Codec)
	assert.Equal(client.Credentialed, c.Resource.Client.Mode)
	assert.Equal(15*time.Second, c.Resource.Client.Timeout)

	// viper lowercases keys, and the client canonicalizes them when sending
	assert.Equal([]string{"value"}, c.Resource.Client.Header["x-test"])
	assert.Equal(7, c.Resource.Client.Transport.MaxIdleConns)
	assert.Equal(time.Minute, c.Wait)
}

func TestLoadBadMode(t *testing.T) {
	v, err := New(ApplyDefaults(DefaultValues()))
	require.NoError(t, err)

	v.Set("resource.client.mode", "nosuch")
	_, err = Load(v)
	assert.Error(t, err)
}

func TestStdOptionsFlags(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = newTestFlagSet()
	)

	require.NoError(fs.Parse([]string{
		"--codec", "json",
		"--mode", "anonymous",
		"--timeout", "3s",
		"--log-level", "warn",
	}))

	v, err := New(StdOptions(ApplicationName, fs))
	require.NoError(err)
	require.NoError(ReadInConfig(v))

	c, err := Load(v)
	require.NoError(err)

	assert.Equal("warn", c.Log.Level)
	assert.Equal(resource.JSONCodecName, c.Resource.Codec)
	assert.Equal(client.Anonymous, c.Resource.Client.Mode)
	assert.Equal(3*time.Second, c.Resource.Client.Timeout)

	// unset flags do not override the defaults
	assert.Equal(DefaultWait, c.Wait)
}

func TestStdOptionsEnvironment(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = newTestFlagSet()
	)

	t.Setenv("FARRESOURCE_RESOURCE_CODEC", "msgpack")
	t.Setenv("FARRESOURCE_WAIT", "5s")
	require.NoError(fs.Parse([]string{"--wait", "10s"}))

	v, err := New(StdOptions(ApplicationName, fs))
	require.NoError(err)

	c, err := Load(v)
	require.NoError(err)

	assert.Equal(resource.MsgpackCodecName, c.Resource.Codec)

	// flags take precedence over the environment
	assert.Equal(10*time.Second, c.Wait)
}

func TestStdOptionsConfigFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fs      = newTestFlagSet()
		file    = filepath.Join(t.TempDir(), "test.yaml")
	)

	require.NoError(os.WriteFile(file, []byte("resource:\n  codec: json\nwait: 2s\n"), 0600))
	require.NoError(fs.Parse([]string{"--file", file}))

	v, err := New(StdOptions(ApplicationName, fs))
	require.NoError(err)
	require.NoError(ReadInConfig(v))

	c, err := Load(v)
	require.NoError(err)
	assert.Equal(resource.JSONCodecName, c.Resource.Codec)
	assert.Equal(2*time.Second, c.Wait)
	assert.Equal(client.Uniform, c.Resource.Client.Mode)
}

func TestReadInConfigMissingFile(t *testing.T) {
	var (
		require = require.New(t)
		fs      = newTestFlagSet()
	)

	require.NoError(fs.Parse([]string{"--file", filepath.Join(t.TempDir(), "nosuch.yaml")}))

	v, err := New(StdOptions(ApplicationName, fs))
	require.NoError(err)
	assert.Error(t, ReadInConfig(v))
}

func TestConfigureNil(t *testing.T) {
	v, err := Configure(nil, SetConfigName("test"))
	assert.Nil(t, v)
	assert.NoError(t, err)

	v, err = Configure(viper.New(), AddConfigPaths("/nosuch"), BindFlags(nil, FlagKeys), BindConfigFile(nil, FileFlag))
	assert.NotNil(t, v)
	assert.NoError(t, err)
}
