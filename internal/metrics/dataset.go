package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JonMunkholm/resourcehub/internal/core"
)

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset loads by outcome",
		},
		[]string{"status"},
	)

	loadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dataset_load_duration_seconds",
			Help:      "Time to fetch and decode the dataset",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	datasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Records in the last successfully loaded dataset",
		},
	)

	datasetShortRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_short_rows",
			Help:      "Short rows in the last successfully loaded dataset",
		},
		[]string{"handling"},
	)

	datasetBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_bytes",
			Help:      "Size of the last successfully fetched export",
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, loadDuration, datasetRecords, datasetShortRows, datasetBytes)
}

// LoadObserver records dataset loads. It satisfies core.LoadObserver.
type LoadObserver struct{}

// ObserveLoad implements core.LoadObserver.
func (LoadObserver) ObserveLoad(r core.LoadReport) {
	loadsTotal.WithLabelValues(r.Status.String()).Inc()
	loadDuration.Observe(r.Duration.Seconds())

	if r.Status != core.StatusSuccess {
		return
	}
	datasetRecords.Set(float64(r.Records))
	datasetBytes.Set(float64(r.Bytes))
	datasetShortRows.WithLabelValues("skipped").Set(float64(r.Skipped))
	datasetShortRows.WithLabelValues("filled").Set(float64(r.Filled))
}
