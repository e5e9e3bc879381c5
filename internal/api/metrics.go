package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	requestTime metric.Int64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	reqTime, err := meter.Int64Histogram("http_request_duration", metric.WithDescription("time spent handling http requests"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration histogram: %w", err)
	}

	return &Metrics{
		requestTime: reqTime,
	}, nil
}

// Instrument records the handling time of requests served by next, labelled with route and status
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requestTime.Record(r.Context(), time.Since(start).Milliseconds(), metric.WithAttributes(
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(rec.status)),
		))
	})
}
