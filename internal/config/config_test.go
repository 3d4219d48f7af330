package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"unitgrader/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Verbose)
	require.False(t, bool(cfg.NoColor))
	require.Empty(t, cfg.FeedbackURL)
	require.Empty(t, cfg.Metrics.TextfilePath)
	require.Equal(t, "unitgrader", cfg.Metrics.Namespace)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("VERBOSE", "true")
	t.Setenv("METRICS_TEXTFILE_PATH", "/tmp/grades.prom")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.True(t, cfg.Verbose)
	require.Equal(t, "/tmp/grades.prom", cfg.Metrics.TextfilePath)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `environment: production
noColor: true
feedbackUrl: https://example.com/feedback
metrics:
  namespace: school
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.True(t, bool(cfg.NoColor))
	require.Equal(t, "https://example.com/feedback", cfg.FeedbackURL)
	require.Equal(t, "school", cfg.Metrics.Namespace)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoad_NoColor(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "", expected: false},
		{value: "1", expected: true},
		{value: "yes", expected: true},
		{value: "false", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.value)

			cfg, err := config.Load("")
			require.NoError(t, err)
			require.Equal(t, tt.expected, bool(cfg.NoColor))
		})
	}
}
