package metrics_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"emailrep/pkg/metrics"
	"emailrep/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", metrics.Outcome(nil))
	require.Equal(t, "error", metrics.Outcome(errors.New("boom")))
	require.Equal(t, "TIMEOUT", metrics.Outcome(serrors.With(serrors.ErrTimeout, "dns")))
}

func TestRecorderExportsToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	rec, err := metrics.NewRecorder(mp)
	require.NoError(t, err)

	ctx := context.Background()
	rec.ObserveProbe(ctx, "dns", 120*time.Millisecond, nil)
	rec.ObserveProbe(ctx, "smtp", time.Second, serrors.With(serrors.ErrUnavailable, "refused"))
	rec.CountEvaluation(ctx, "good")
	rec.CountCacheLookup(ctx, true)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	require.Contains(t, joined, "emailrep_probe_duration")
	require.Contains(t, joined, "emailrep_evaluations")
	require.Contains(t, joined, "emailrep_cache_lookups")
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *metrics.Recorder
	require.NotPanics(t, func() {
		rec.ObserveProbe(context.Background(), "dns", time.Millisecond, nil)
		rec.CountEvaluation(context.Background(), "poor")
		rec.CountCacheLookup(context.Background(), false)
	})
}
