package metrics

import (
	"context"
	"time"
	"unitgrader/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	meterName = "unitgrader/grader"

	unknownCategory = "unknown"
)

// Recorder counts graded questions and observes grading latency. Every
// Recorder owns its own Prometheus registry, so several can coexist.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	grades   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRecorder creates a Recorder whose metric names are prefixed with
// namespace. An empty namespace leaves names unprefixed.
func NewRecorder(namespace string) (*Recorder, error) {
	registry := prometheus.NewRegistry()

	opts := []otelprom.Option{otelprom.WithRegisterer(registry)}
	if namespace != "" {
		opts = append(opts, otelprom.WithNamespace(namespace))
	}
	exp, err := otelprom.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create otel exporter")
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := mp.Meter(meterName)

	grades, err := meter.Int64Counter("grades",
		metric.WithDescription("Number of graded questions by category and outcome."),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create grades counter")
	}

	duration, err := meter.Float64Histogram("grade.duration",
		metric.WithDescription("Time spent grading a single question."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create grade duration histogram")
	}

	return &Recorder{
		registry: registry,
		provider: mp,
		grades:   grades,
		duration: duration,
	}, nil
}

// RecordGrade records one graded question. Questions rejected before a
// category was resolved are labelled with the "unknown" category.
func (r *Recorder) RecordGrade(ctx context.Context, category domain.Category, outcome domain.Outcome,
	elapsed time.Duration,
) {
	c := string(category)
	if c == "" {
		c = unknownCategory
	}
	attrs := metric.WithAttributes(
		attribute.String("category", c),
		attribute.String("outcome", string(outcome)),
	)

	r.grades.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// Gatherer returns the registry holding the recorded metrics.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile writes the current metrics to path in the Prometheus text
// format, suitable for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to %q", path)
	}

	return nil
}

// Shutdown flushes and stops the underlying meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if err := r.provider.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "could not shut down meter provider")
	}

	return nil
}
