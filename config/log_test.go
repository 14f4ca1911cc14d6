// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogNewZapConfig(t *testing.T) {
	testData := []struct {
		log              Log
		expectedLevel    zapcore.Level
		expectedEncoding string
		expectedOutput   []string
	}{
		{Log{}, zapcore.InfoLevel, "console", []string{"stderr"}},
		{Log{Level: "debug", JSON: true}, zapcore.DebugLevel, "json", []string{"stderr"}},
		{Log{Level: "ERROR", OutputPaths: []string{"stdout"}}, zapcore.ErrorLevel, "console", []string{"stdout"}},
		{Log{Development: true}, zapcore.DebugLevel, "console", []string{"stderr"}},
	}

	for _, record := range testData {
		t.Run(record.expectedEncoding+"/"+record.expectedLevel.String(), func(t *testing.T) {
			var (
				assert  = assert.New(t)
				require = require.New(t)
			)

			zc, err := record.log.NewZapConfig()
			require.NoError(err)
			assert.Equal(record.expectedLevel, zc.Level.Level())
			assert.Equal(record.expectedEncoding, zc.Encoding)
			assert.Equal(record.expectedOutput, zc.OutputPaths)
			assert.Equal(record.log.Development, zc.Development)
		})
	}
}

func TestLogNewLogger(t *testing.T) {
	logger, err := Log{Level: "warn", OutputPaths: []string{"stdout"}}.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = Log{Level: "nosuch"}.NewLogger()
	assert.Error(t, err)
}
