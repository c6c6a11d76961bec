// Package metrics exposes Prometheus instrumentation for the ledger, the
// fulfillment loop, the order listener and the HTTP API.
//
// Mount Handler on GET /metrics and wrap the router with Middleware.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scm"

// Move results.
const (
	MoveOK           = "ok"
	MoveInsufficient = "insufficient_stock"
	MoveFailed       = "failed"
)

// Fulfillment outcomes.
const (
	FulfillmentComplete = "complete"
	FulfillmentPartial  = "partial"
	FulfillmentFailed   = "failed"
)

var (
	MovesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "moves_total",
			Help:      "Ledger moves by result.",
		},
		[]string{"result"},
	)

	UnitsMoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "units_moved_total",
		Help:      "Units moved by successful ledger moves.",
	})

	FulfillmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fulfillment",
			Name:      "runs_total",
			Help:      "Fulfillment runs by outcome.",
		},
		[]string{"outcome"},
	)

	// UnitsShort counts units an order asked for that no reachable location could supply.
	UnitsShort = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fulfillment",
		Name:      "units_short_total",
		Help:      "Units left unfulfilled after sourcing every reachable location.",
	})

	EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "listener",
			Name:      "events_total",
			Help:      "Order events consumed by status.",
		},
		[]string{"status"}, // "success" | "failed" | "invalid" | "duplicate"
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})
)

// Registry holds every collector of this service.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	Registry.MustRegister(
		MovesTotal,
		UnitsMoved,
		FulfillmentsTotal,
		UnitsShort,
		EventsConsumed,
		RequestDuration,
		RequestInFlight,
	)
}

// ObserveMove records one ledger move attempt.
func ObserveMove(result string, units int) {
	MovesTotal.WithLabelValues(result).Inc()
	if units > 0 {
		UnitsMoved.Add(float64(units))
	}
}

// ObserveFulfillment records one fulfillment run and its shortfall.
func ObserveFulfillment(outcome string, remaining int) {
	FulfillmentsTotal.WithLabelValues(outcome).Inc()
	if remaining > 0 {
		UnitsShort.Add(float64(remaining))
	}
}

func ObserveEvent(status string) {
	EventsConsumed.WithLabelValues(status).Inc()
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and in-flight count per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		RequestInFlight.Inc()
		defer RequestInFlight.Dec()

		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rr, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		RequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(rr.status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus text and OpenMetrics formats.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
