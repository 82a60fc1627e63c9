// Package metrics defines the Prometheus metric collectors for the archive
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the archive.
type Metrics struct {
	DocsIngestedTotal     *prometheus.CounterVec
	IngestDuration        prometheus.Histogram
	ExtractionMethodTotal *prometheus.CounterVec
	DatesExtractedTotal   *prometheus.CounterVec
	SearchQueriesTotal    *prometheus.CounterVec
	SearchLatency         prometheus.Histogram
	SearchResultsCount    prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		DocsIngestedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_ingested_total",
				Help: "Documents processed by outcome (ingested, duplicate, unextractable, failed).",
			},
			[]string{"outcome"},
		),
		IngestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "document_ingest_duration_seconds",
				Help:    "Per-document ingestion latency in seconds, OCR included.",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		ExtractionMethodTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "text_extraction_method_total",
				Help: "Successful text extractions by method (pdf-text, pdf-ocr).",
			},
			[]string{"method"},
		),
		DatesExtractedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_dates_extracted_total",
				Help: "Date extraction attempts by outcome (found, not_found).",
			},
			[]string{"outcome"},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by result type (hit, zero_result, error).",
			},
			[]string{"result_type"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_latency_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of merged results per search query, pre-pagination.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
		),
	}

	prometheus.MustRegister(
		m.DocsIngestedTotal,
		m.IngestDuration,
		m.ExtractionMethodTotal,
		m.DatesExtractedTotal,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
