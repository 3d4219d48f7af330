package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unitgrader/pkg/domain"
	"unitgrader/pkg/metrics"

	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, r *metrics.Recorder, family, category, outcome string) float64 {
	t.Helper()

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["category"] == category && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func TestRecorder_RecordGrade(t *testing.T) {
	r, err := metrics.NewRecorder("unitgrader")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })

	ctx := context.Background()
	r.RecordGrade(ctx, domain.CategoryTemperature, domain.OutcomeCorrect, time.Millisecond)
	r.RecordGrade(ctx, domain.CategoryTemperature, domain.OutcomeCorrect, time.Millisecond)
	r.RecordGrade(ctx, domain.CategoryVolume, domain.OutcomeIncorrect, time.Millisecond)
	r.RecordGrade(ctx, "", domain.OutcomeInvalid, time.Millisecond)

	require.InDelta(t, 2, counterValue(t, r, "unitgrader_grades_total", "temperature", "correct"), 0)
	require.InDelta(t, 1, counterValue(t, r, "unitgrader_grades_total", "volume", "incorrect"), 0)
	require.InDelta(t, 1, counterValue(t, r, "unitgrader_grades_total", "unknown", "invalid"), 0)
	require.InDelta(t, 0, counterValue(t, r, "unitgrader_grades_total", "volume", "correct"), 0)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r, err := metrics.NewRecorder("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Shutdown(context.Background()) })

	r.RecordGrade(context.Background(), domain.CategoryVolume, domain.OutcomeCorrect, 2*time.Microsecond)

	path := filepath.Join(t.TempDir(), "grades.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	require.Contains(t, out, "grades_total")
	require.Contains(t, out, "grade_duration_seconds_bucket")
	require.Contains(t, out, `outcome="correct"`)
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	r, err := metrics.NewRecorder("")
	require.NoError(t, err)

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "grades.prom"))
	require.Error(t, err)
}
