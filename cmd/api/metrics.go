package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas HTTP registradas no registro padrão do Prometheus e expostas em /metrics.
// As métricas de webhook ficam junto dos handlers.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requisições HTTP recebidas.",
		},
		[]string{"method", "path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "code"},
	)
)

// prometheusMiddleware coleta contagem e latência por rota.
func prometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// Usa o padrão da rota (ex: /pecas/{slug}) para não criar uma série por slug.
		rota := rotaDaRequisicao(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)
		httpRequestsTotal.WithLabelValues(r.Method, rota, code).Inc()
		httpRequestDuration.WithLabelValues(r.Method, rota, code).Observe(time.Since(start).Seconds())
	})
}

func rotaDaRequisicao(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "desconhecida"
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "desconhecida"
}
