package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time

	registry        *prometheus.Registry
	generation      prometheus.Gauge
	population      prometheus.Gauge
	generationsDone prometheus.Counter
	advanceSeconds  prometheus.Histogram
}

func NewStats() *Stats {
	s := &Stats{
		StartTime: time.Now(),
		registry:  prometheus.NewRegistry(),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "generation",
			Help:      "Index of the generation currently displayed.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "population",
			Help:      "Number of living cells in the current generation.",
		}),
		generationsDone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "generations_total",
			Help:      "Generations advanced since start.",
		}),
		advanceSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "life",
			Name:      "advance_duration_seconds",
			Help:      "Time spent computing one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	s.registry.MustRegister(s.generation, s.population, s.generationsDone, s.advanceSeconds)
	return s
}

// Registry exposes the metrics registry backing the stats
func (s *Stats) Registry() *prometheus.Registry {
	return s.registry
}

// Observe records the generation shown and its population without counting an advance
func (s *Stats) Observe(generation, population int) {
	s.TotalGenerations = generation
	s.Population = population
	s.generation.Set(float64(generation))
	s.population.Set(float64(population))

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Update records one advanced generation that took duration to compute
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.Observe(generation, population)
	s.generationsDone.Inc()
	s.advanceSeconds.Observe(duration.Seconds())
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
}
