// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

// AddConfigPaths adds each path to the locations searched for the configuration file.
func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

// SetConfigName sets the base name, without extension, of the configuration file.
func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

// AutomaticEnv makes every configuration key available through an environment variable.
// Nested keys use underscores, so "resource.codec" becomes PREFIX_RESOURCE_CODEC.
func AutomaticEnv(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
		return nil
	}
}

// ApplyDefaults sets each default value.
func ApplyDefaults(d Defaults) Option {
	return func(v *viper.Viper) error {
		for key, value := range d {
			v.SetDefault(key, value)
		}

		return nil
	}
}

// BindFlags binds each flag present in fs to its configuration key.  Flags that fs
// does not define are skipped.
func BindFlags(fs *pflag.FlagSet, keys map[string]string) Option {
	return func(v *viper.Viper) error {
		if fs == nil {
			return nil
		}

		for flag, key := range keys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// BindConfigFile uses the value of the given flag, if set, as the exact configuration file.
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if fs == nil {
			return nil
		}

		if f := fs.Lookup(flag); f != nil {
			if configFile := f.Value.String(); len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// StdOptions is the standard configuration for an application:  configuration files named
// after the application in /etc/<name>, $HOME/.<name>, or the current directory, environment
// variables prefixed with the application name, the default values, and the standard flags.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		for _, o := range []Option{
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			SetConfigName(applicationName),
			AutomaticEnv(applicationName),
			ApplyDefaults(DefaultValues()),
			BindFlags(fs, FlagKeys),
			BindConfigFile(fs, FileFlag),
		} {
			if err := o(v); err != nil {
				return err
			}
		}

		return nil
	}
}

// New creates and configures a Viper instance.
func New(o ...Option) (*viper.Viper, error) {
	return Configure(viper.New(), o...)
}

// Configure applies each option to an existing Viper instance.
func Configure(v *viper.Viper, o ...Option) (*viper.Viper, error) {
	if v != nil {
		for _, f := range o {
			if err := f(v); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

// ReadInConfig reads the configuration file.  A missing file is not an error when the file was
// searched for by name, since every setting has a default.  An explicit file must exist.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
