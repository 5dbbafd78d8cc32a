package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	sdkerrors "github.com/insanitybit/haveibeenpwnd/client/internal/errors"
)

const (
	endpointAccountBreaches = "breachedaccount"
	endpointAllBreaches     = "breaches"
	endpointBreach          = "breach"
	endpointDataClasses     = "dataclasses"
	endpointPastes          = "pasteaccount"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hibp_client",
			Name:      "requests_total",
			Help:      "Requests sent, by endpoint and outcome (ok, not_found, network, decode, api, other).",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hibp_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a Send, including body decode.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// observe runs fn and records its duration and outcome for endpoint.
func observe(endpoint string, fn func() error) error {
	start := time.Now()
	err := fn()
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(endpoint, outcomeLabel(err)).Inc()
	return err
}

func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if IsNotFound(err) {
		return "not_found"
	}
	kind, ok := sdkerrors.KindOf(err)
	if !ok {
		return "other"
	}
	switch kind {
	case sdkerrors.Network:
		return "network"
	case sdkerrors.Decode:
		return "decode"
	default:
		return "api"
	}
}
