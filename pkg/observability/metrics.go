package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/roboadvisor/pkg/dialog"
)

const namespace = "roboadvisor"

// Metrics holds the dialog collectors.
type Metrics struct {
	Requests  *prometheus.CounterVec
	Responses *prometheus.CounterVec
	Errors    *prometheus.CounterVec
	Duration  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := newMetrics()
	reg.MustRegister(m.Requests, m.Responses, m.Errors, m.Duration)
	m.gatherer = reg
	return m
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dialog_requests_total",
				Help:      "Total number of code hook invocations",
			},
			[]string{"intent", "source"},
		),
		Responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dialog_responses_total",
				Help:      "Total number of dialog responses by action type",
			},
			[]string{"intent", "action"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dialog_errors_total",
				Help:      "Total number of failed code hook invocations",
			},
			[]string{"intent", "kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dialog_duration_seconds",
				Help:      "Duration of code hook invocations",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"intent"},
		),
	}
}

// Hooks returns dispatcher hooks that record into m.
func (m *Metrics) Hooks() dialog.Hooks {
	return dialog.Hooks{
		OnRequest: func(_ context.Context, x *dialog.Exchange) {
			m.Requests.WithLabelValues(x.Intent, string(x.Source)).Inc()
		},
		OnResponse: func(_ context.Context, x *dialog.Exchange) {
			m.Responses.WithLabelValues(x.Intent, string(x.Action)).Inc()
			m.Duration.WithLabelValues(x.Intent).Observe(x.Duration.Seconds())
		},
		OnError: func(_ context.Context, x *dialog.Exchange) {
			m.Errors.WithLabelValues(x.Intent, errorKind(x.Err)).Inc()
			m.Duration.WithLabelValues(x.Intent).Observe(x.Duration.Seconds())
		},
	}
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func errorKind(err error) string {
	if errors.Is(err, dialog.ErrUnsupportedIntent) {
		return "unsupported_intent"
	}
	return "handler"
}
