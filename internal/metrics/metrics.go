package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "degrees_searches_total",
		Help: "Total number of shortest-path searches, labelled by outcome.",
	}, []string{"outcome"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "degrees_search_duration_ms",
		Help:    "Shortest-path search latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	PathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "degrees_path_length",
		Help:    "Degrees of separation for successful searches.",
		Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10},
	})

	DatasetPeople = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "degrees_dataset_people",
		Help: "Number of people in the loaded dataset.",
	})

	DatasetMovies = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "degrees_dataset_movies",
		Help: "Number of movies in the loaded dataset.",
	})
)

// Outcome labels for SearchesTotal.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)
