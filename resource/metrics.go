// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Names for our metrics
const (
	DispatchCounter  = "resource_dispatches"
	InFlightGauge    = "resource_dispatches_inflight"
	GoneCounter      = "resource_gone"
	OutcomeLabel     = "outcome"
	MethodLabel      = "method"
	SuccessOutcome   = "success"
	GoneOutcome      = "gone"
	FailedOutcome    = "failed"
	TransportOutcome = "transport"
	DecodeOutcome    = "decode"
)

// Measures is the set of metrics updated by far resources.
type Measures struct {
	Dispatches metrics.Counter
	InFlight   metrics.Gauge
	Gone       metrics.Counter
}

// NewDiscardMeasures produces Measures that record nothing.
func NewDiscardMeasures() *Measures {
	return &Measures{
		Dispatches: discard.NewCounter(),
		InFlight:   discard.NewGauge(),
		Gone:       discard.NewCounter(),
	}
}

// MeasuresIn is the uber/fx parameter for NewMeasures.
type MeasuresIn struct {
	fx.In
	Registerer prometheus.Registerer
}

// NewMeasures creates and registers the prometheus collectors for far resources.
// Collectors that are already registered are reused.
func NewMeasures(r prometheus.Registerer) (*Measures, error) {
	dispatches, err := registerCounterVec(r, prometheus.CounterOpts{
		Name: DispatchCounter,
		Help: "The count of far resource dispatches, by method and outcome",
	}, MethodLabel, OutcomeLabel)
	if err != nil {
		return nil, err
	}

	gone, err := registerCounterVec(r, prometheus.CounterOpts{
		Name: GoneCounter,
		Help: "The count of far resources that transitioned to gone",
	})
	if err != nil {
		return nil, err
	}

	inFlight := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: InFlightGauge,
		Help: "The number of far resource dispatches awaiting a response",
	}, []string{})

	if err := r.Register(inFlight); err != nil {
		already, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}

		inFlight = already.ExistingCollector.(*prometheus.GaugeVec)
	}

	return &Measures{
		Dispatches: gokitprometheus.NewCounter(dispatches),
		InFlight:   gokitprometheus.NewGauge(inFlight),
		Gone:       gokitprometheus.NewCounter(gone),
	}, nil
}

func registerCounterVec(r prometheus.Registerer, o prometheus.CounterOpts, labelNames ...string) (*prometheus.CounterVec, error) {
	cv := prometheus.NewCounterVec(o, labelNames)
	if err := r.Register(cv); err != nil {
		already, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}

		cv = already.ExistingCollector.(*prometheus.CounterVec)
	}

	return cv, nil
}

// ProvideMetrics provides *Measures to an uber/fx application.  The application must supply
// a prometheus.Registerer.
func ProvideMetrics() fx.Option {
	return fx.Provide(
		func(in MeasuresIn) (*Measures, error) {
			return NewMeasures(in.Registerer)
		},
	)
}
