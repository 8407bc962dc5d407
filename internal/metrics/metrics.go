package metrics

import (
	"context"
	"errors"
	"houseprice/internal/predict"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "houseprice"

type Estimator interface {
	Estimate(ctx context.Context, features predict.Features) (float64, error)
}

// Metrics owns a private registry with the HTTP and prediction collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	predictions  *prometheus.CounterVec
	prices       *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "predictor",
			Name:      "estimates_total",
			Help:      "Total number of price estimates by outcome.",
		}, []string{"predictor", "outcome"}),
		prices: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "predictor",
			Name:      "estimated_price",
			Help:      "Distribution of estimated prices.",
			Buckets:   prometheus.ExponentialBuckets(100000, 2, 8),
		}, []string{"predictor"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.predictions,
		m.prices,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler records count and latency per route. The route label is the
// ServeMux pattern that matched, so path parameters do not blow up cardinality.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordPrediction counts one estimate and, when it succeeded, observes its price.
func (m *Metrics) RecordPrediction(predictor string, price float64, err error) {
	switch {
	case err == nil:
		m.predictions.WithLabelValues(predictor, "ok").Inc()
		m.prices.WithLabelValues(predictor).Observe(price)
	case errors.Is(err, predict.ErrInvalidFeatures):
		m.predictions.WithLabelValues(predictor, "rejected").Inc()
	default:
		m.predictions.WithLabelValues(predictor, "error").Inc()
	}
}

// InstrumentEstimator wraps next so every estimate is recorded under predictor.
func (m *Metrics) InstrumentEstimator(predictor string, next Estimator) Estimator {
	return &instrumentedEstimator{
		metrics:   m,
		predictor: predictor,
		next:      next,
	}
}

type instrumentedEstimator struct {
	metrics   *Metrics
	predictor string
	next      Estimator
}

func (e *instrumentedEstimator) Estimate(ctx context.Context, features predict.Features) (float64, error) {
	price, err := e.next.Estimate(ctx, features)
	e.metrics.RecordPrediction(e.predictor, price, err)
	return price, err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
