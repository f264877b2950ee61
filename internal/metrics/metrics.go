// Package metrics records conversion statistics in Prometheus form.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grovetools/spec2wsx/internal/capture"
)

// Recorder holds the conversion metrics on its own registry.
type Recorder struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	counters    map[string]prometheus.Counter
	duration    prometheus.Histogram
}

// NewRecorder creates and registers the conversion metrics.
func NewRecorder() *Recorder {
	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spec2wsx_conversions_total",
		Help: "Capture conversions by result.",
	}, []string{"result"})
	sweeps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spec2wsx_sweeps_written_total",
		Help: "Sweeps written to containers.",
	})
	padded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spec2wsx_rows_padded_total",
		Help: "Sweeps shorter than the header density, padded with filler.",
	})
	truncated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spec2wsx_rows_truncated_total",
		Help: "Sweeps longer than the header density, truncated.",
	})
	clamped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spec2wsx_values_clamped_total",
		Help: "Amplitude readings outside the container range.",
	})
	resampled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spec2wsx_resampled_captures_total",
		Help: "Turbo captures stretched to the full density.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spec2wsx_conversion_duration_seconds",
		Help:    "Wall time of a conversion, parsing to commit.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(conversions, sweeps, padded, truncated, clamped, resampled, duration)

	return &Recorder{
		registry:    reg,
		conversions: conversions,
		counters: map[string]prometheus.Counter{
			"spec2wsx_sweeps_written_total":     sweeps,
			"spec2wsx_rows_padded_total":        padded,
			"spec2wsx_rows_truncated_total":     truncated,
			"spec2wsx_values_clamped_total":     clamped,
			"spec2wsx_resampled_captures_total": resampled,
		},
		duration: duration,
	}
}

// ObserveSuccess records a finished conversion.
func (r *Recorder) ObserveSuccess(report *capture.Report, seconds float64) {
	r.conversions.WithLabelValues("success").Inc()
	r.duration.Observe(seconds)
	if report == nil {
		return
	}
	r.counters["spec2wsx_sweeps_written_total"].Add(float64(report.Sweeps))
	r.counters["spec2wsx_rows_padded_total"].Add(float64(report.PaddedRows))
	r.counters["spec2wsx_rows_truncated_total"].Add(float64(report.TruncatedRows))
	r.counters["spec2wsx_values_clamped_total"].Add(float64(report.ClampedValues))
	if report.Resampled {
		r.counters["spec2wsx_resampled_captures_total"].Inc()
	}
}

// ObserveFailure records a conversion that produced no container.
func (r *Recorder) ObserveFailure(seconds float64) {
	r.conversions.WithLabelValues("failure").Inc()
	r.duration.Observe(seconds)
}

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
