// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log describes the zap logger used by the tool.
type Log struct {
	// Level is one of the zap level names.  The default is info.
	Level string

	// Development selects zap's development defaults, which include stack traces on warnings.
	Development bool

	// JSON selects the json encoding.  Otherwise, console encoding is used.
	JSON bool

	// OutputPaths are the zap sinks for log output.  The default is stderr.
	OutputPaths []string
}

// NewZapConfig converts this Log into a zap.Config.
func (l Log) NewZapConfig() (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}

	if len(l.Level) > 0 {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(l.Level)); err != nil {
			return zap.Config{}, err
		}

		zc.Level = zap.NewAtomicLevelAt(level)
	}

	if l.JSON {
		zc.Encoding = "json"
	} else {
		zc.Encoding = "console"
	}

	if len(l.OutputPaths) > 0 {
		zc.OutputPaths = l.OutputPaths
	}

	return zc, nil
}

// NewLogger builds the zap.Logger described by this Log.
func (l Log) NewLogger() (*zap.Logger, error) {
	zc, err := l.NewZapConfig()
	if err != nil {
		return nil, err
	}

	return zc.Build()
}
