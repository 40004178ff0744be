package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes counters an embedding caller can scrape via
// prometheus/client_golang's promhttp.Handler, following the teacher's
// --metrics-addr pattern (cmd/cie/index.go).
var (
	filesIndexedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pioneer_indexer_files_indexed_total",
		Help: "Total number of source files successfully parsed and indexed.",
	})
	parseErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pioneer_indexer_parse_errors_total",
		Help: "Total number of source files that failed to parse.",
	})
	symbolsIndexedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pioneer_indexer_symbols_indexed_total",
		Help: "Total number of function and variable symbols added to the graph.",
	})
)
