// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutboundInFlightGauge         = "outbound_inflight"
	OutboundRequestDuration       = "outbound_request_duration_seconds"
	OutboundRequestCounter        = "outbound_requests"
	OutboundTransportErrorCounter = "outbound_transport_errors"
)

// OutboundMeasures instruments the HTTP transport.  Any nil field is simply not recorded,
// so the zero value is legal.
type OutboundMeasures struct {
	InFlight        prometheus.Gauge
	RequestDuration prometheus.ObserverVec
	RequestCounter  *prometheus.CounterVec
	TransportErrors prometheus.Counter
}

// NewOutboundMeasures creates and registers the outbound collectors.
func NewOutboundMeasures(r prometheus.Registerer) (OutboundMeasures, error) {
	om := OutboundMeasures{
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: OutboundInFlightGauge,
			Help: "The number of active, in-flight requests to far resources",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    OutboundRequestDuration,
			Help:    "The durations of requests to far resources",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		RequestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: OutboundRequestCounter,
			Help: "The count of requests to far resources",
		}, []string{"code", "method"}),
		TransportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: OutboundTransportErrorCounter,
			Help: "The count of requests that produced no response",
		}),
	}

	for _, c := range []prometheus.Collector{
		om.InFlight,
		om.RequestDuration,
		om.RequestCounter,
		om.TransportErrors,
	} {
		if err := r.Register(c); err != nil {
			return OutboundMeasures{}, err
		}
	}

	return om, nil
}

// InstrumentOutboundErrors counts transactions that fail without any response.
func InstrumentOutboundErrors(counter prometheus.Counter, next http.RoundTripper) promhttp.RoundTripperFunc {
	return promhttp.RoundTripperFunc(func(request *http.Request) (*http.Response, error) {
		response, err := next.RoundTrip(request)
		if err != nil {
			counter.Inc()
		}

		return response, err
	})
}

// DecorateWithMetrics produces an http.RoundTripper that is decorated with whichever
// measures are present.
func DecorateWithMetrics(om OutboundMeasures, next http.RoundTripper) http.RoundTripper {
	if om.InFlight != nil {
		next = promhttp.InstrumentRoundTripperInFlight(om.InFlight, next)
	}

	if om.TransportErrors != nil {
		next = InstrumentOutboundErrors(om.TransportErrors, next)
	}

	if om.RequestDuration != nil {
		next = promhttp.InstrumentRoundTripperDuration(om.RequestDuration, next)
	}

	if om.RequestCounter != nil {
		next = promhttp.InstrumentRoundTripperCounter(om.RequestCounter, next)
	}

	return next
}
