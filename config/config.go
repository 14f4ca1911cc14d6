// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/xmidt-org/farresource/client"
	"github.com/xmidt-org/farresource/resource"
)

const (
	// ApplicationName is used for configuration file names and the environment variable prefix.
	ApplicationName = "farresource"

	// FileFlag is the flag naming an exact configuration file.
	FileFlag = "file"

	// WaitKey is the configuration key for Config.Wait.
	WaitKey = "wait"

	DefaultWait = 30 * time.Second
)

// FlagKeys maps command line flags onto their configuration keys.
var FlagKeys = map[string]string{
	"codec":     "resource.codec",
	"mode":      "resource.client.mode",
	"timeout":   "resource.client.timeout",
	"log-level": "log.level",
	"wait":      WaitKey,
}

// Defaults is a set of default configuration values, by key
type Defaults map[string]interface{}

// DefaultValues returns the defaults for every configuration key.  Environment variables are
// only consulted for keys viper knows about, so every key an operator may override belongs here.
func DefaultValues() Defaults {
	return Defaults{
		"log.level":               "info",
		"log.development":         false,
		"log.json":                true,
		"resource.codec":          resource.TextCodecName,
		"resource.client.mode":    client.Uniform.String(),
		"resource.client.timeout": "0s",
		"resource.client.tracing": false,
		WaitKey:                   DefaultWait.String(),
	}
}

// Config is the complete configuration of the farresource tool.
type Config struct {
	Log      Log
	Resource resource.Factory

	// Wait bounds how long a single dispatch is awaited.
	Wait time.Duration
}

// Load produces a Config from a (possibly nil) Viper instance.  A nil Viper yields
// the default configuration.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		var err error
		if v, err = New(ApplyDefaults(DefaultValues())); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c, viper.DecodeHook(client.DecodeHook())); err != nil {
		return Config{}, err
	}

	return c, nil
}
