package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alltopia_scores_total",
			Help: "Total number of scored societies by label.",
		},
		[]string{"label"},
	)

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alltopia_generations_total",
			Help: "Total number of generation requests by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	unstructuredResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alltopia_unstructured_responses_total",
			Help: "AI responses that did not have the requested paragraph shape.",
		},
		[]string{"kind"},
	)
)
