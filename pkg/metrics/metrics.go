// Package metrics owns the OpenTelemetry instruments of the reputation engine.
// Instruments are exported through the Prometheus default registerer, which the
// API server exposes on its metrics path.
package metrics

import (
	"context"
	"fmt"
	"time"

	"emailrep/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets are latency buckets in seconds. Probes talk to remote DNS,
// SMTP and WHOIS servers, so the upper range reaches half a minute.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30} //nolint: gochecknoglobals

const meterName = "emailrep"

// NewMeterProvider creates a MeterProvider whose readings are served by the
// Prometheus default registry.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Recorder records probe latencies, evaluations and cache lookups.
type Recorder struct {
	probeDuration metric.Float64Histogram
	evaluations   metric.Int64Counter
	cacheLookups  metric.Int64Counter
}

// NewRecorder creates the instruments on a meter from mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	probeDuration, err := meter.Float64Histogram("emailrep.probe.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a single probe call"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create probe duration histogram: %w", err)
	}

	evaluations, err := meter.Int64Counter("emailrep.evaluations",
		metric.WithDescription("Completed address evaluations by reputation label"))
	if err != nil {
		return nil, fmt.Errorf("could not create evaluations counter: %w", err)
	}

	cacheLookups, err := meter.Int64Counter("emailrep.cache.lookups",
		metric.WithDescription("Verdict cache lookups by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create cache lookups counter: %w", err)
	}

	return &Recorder{
		probeDuration: probeDuration,
		evaluations:   evaluations,
		cacheLookups:  cacheLookups,
	}, nil
}

// Outcome names the result of a probe call for metric attributes.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return "error"
}

// ObserveProbe records how long a probe took and how it ended. A nil Recorder
// is a no-op.
func (r *Recorder) ObserveProbe(ctx context.Context, probe string, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.probeDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("probe", probe),
		attribute.String("outcome", Outcome(err)),
	))
}

// CountEvaluation records one completed evaluation with the given label.
func (r *Recorder) CountEvaluation(ctx context.Context, label string) {
	if r == nil {
		return
	}
	r.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("label", label)))
}

// CountCacheLookup records a verdict cache lookup.
func (r *Recorder) CountCacheLookup(ctx context.Context, hit bool) {
	if r == nil {
		return
	}
	r.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
