// Package metrics holds the Prometheus collectors the site exports on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_http_requests_total",
		Help: "Total number of HTTP requests by route pattern, method and status",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Feature metrics
	AssistRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_assist_requests_total",
		Help: "FAQ assist questions by provider and outcome (answered, fallback, rejected)",
	}, []string{"provider", "outcome"})

	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_contact_submissions_total",
		Help: "Contact form posts by resulting state",
	}, []string{"state"})

	NewsletterSignups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_newsletter_signups_total",
		Help: "Newsletter sign-ups by outcome (created, existing, invalid, full)",
	}, []string{"outcome"})

	NotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "website_not_found_total",
		Help: "Requests for unknown routes",
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_rate_limited_total",
		Help: "Requests rejected by a per-client limiter",
	}, []string{"limiter"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latency keyed by the matched chi
// route pattern, so path parameters do not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
