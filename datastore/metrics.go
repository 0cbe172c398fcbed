package datastore

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all st2kv metrics
	namespace = "st2kv"
)

// Result labels of the request metrics.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)

var (
	// RequestsTotal counts datastore reads by outcome
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datastore_requests_total",
			Help:      "Total number of datastore key reads",
		},
		[]string{"result"},
	)

	// RequestDuration tracks the duration of datastore reads
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "datastore_request_duration_seconds",
			Help:      "Duration of datastore key reads in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"result"},
	)
)

// RegisterMetrics registers the datastore metrics with the given registerer.
// Registering twice with the same registerer is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{RequestsTotal, RequestDuration} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

func resultOf(err error) string {
	if err == nil {
		return ResultOK
	}
	var nf *KeyNotFoundError
	if errors.As(err, &nf) {
		return ResultNotFound
	}
	var ae *AuthenticationError
	if errors.As(err, &ae) {
		return ResultUnauthorized
	}
	return ResultError
}
