// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewDiscardMeasures(t *testing.T) {
	assert := assert.New(t)
	m := NewDiscardMeasures()
	require.NotNil(t, m)

	assert.NotPanics(func() {
		m.Dispatches.With(MethodLabel, "GET", OutcomeLabel, SuccessOutcome).Add(1)
		m.InFlight.Add(1)
		m.Gone.Add(1)
	})
}

func TestNewMeasuresConflict(t *testing.T) {
	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: DispatchCounter,
		Help: "a conflicting metric",
	}))

	m, err := NewMeasures(registry)
	assert.Nil(t, m)
	assert.Error(t, err)
}

func TestProvideMetrics(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		registry = prometheus.NewPedanticRegistry()
		measures *Measures
	)

	app := fxtest.New(
		t,
		fx.Provide(
			func() prometheus.Registerer { return registry },
		),
		ProvideMetrics(),
		fx.Populate(&measures),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(measures)
	measures.Dispatches.With(MethodLabel, "GET", OutcomeLabel, SuccessOutcome).Add(1)

	count, err := testutil.GatherAndCount(registry, DispatchCounter)
	assert.NoError(err)
	assert.Equal(1, count)
}
