package ai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alltopia_ai_requests_total",
			Help: "Total number of requests to AI collaborators.",
		},
		[]string{"provider", "model", "kind", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alltopia_ai_request_duration_seconds",
			Help:    "Histogram of AI collaborator request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "model", "kind"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alltopia_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"provider", "model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alltopia_ai_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"provider", "model"},
	)
	aiRateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alltopia_ai_rate_limited_total",
			Help: "Requests rejected by the local AI rate limiter.",
		},
		[]string{"kind"},
	)
)

const (
	kindText  = "text"
	kindImage = "image"

	statusSuccess       = "success"
	statusError         = "error"
	statusEmptyResponse = "error_empty_response"
)

func observeRequest(provider, model, kind, status string, started time.Time) {
	aiRequestsTotal.With(prometheus.Labels{"provider": provider, "model": model, "kind": kind, "status": status}).Inc()
	if status == statusSuccess {
		aiRequestDuration.With(prometheus.Labels{"provider": provider, "model": model, "kind": kind}).Observe(time.Since(started).Seconds())
	}
}

func observeUsage(provider, model string, usage UsageInfo) {
	if usage.TotalTokens <= 0 {
		return
	}
	aiPromptTokens.With(prometheus.Labels{"provider": provider, "model": model}).Observe(float64(usage.PromptTokens))
	aiCompletionTokens.With(prometheus.Labels{"provider": provider, "model": model}).Observe(float64(usage.CompletionTokens))
}
