package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	assert.Equal(t, "test1", cfg.Target.Environment)
	assert.Equal(t, "EFX", cfg.Target.Bureau)
	assert.Equal(t, "LPCR_TOKEN", cfg.Auth.TokenEnv)
	assert.Equal(t, 2, cfg.Submission.Retries)
	assert.Equal(t, 0.5, cfg.Submission.BackoffSeconds)
	assert.Equal(t, float64(30), cfg.Submission.TimeoutSeconds)
	assert.False(t, cfg.Submission.Insecure)
	assert.Equal(t, "flag", cfg.Validation.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSubmissionConfig_Durations(t *testing.T) {
	s := SubmissionConfig{BackoffSeconds: 0.5, TimeoutSeconds: 30}
	assert.Equal(t, 500*time.Millisecond, s.Backoff())
	assert.Equal(t, 30*time.Second, s.Timeout())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(*Config) {}},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Submission.Retries = -1 },
			wantErr: "retries",
		},
		{
			name:    "negative backoff",
			mutate:  func(c *Config) { c.Submission.BackoffSeconds = -0.5 },
			wantErr: "backoff",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Submission.TimeoutSeconds = 0 },
			wantErr: "timeout",
		},
		{
			name:    "bad validation mode",
			mutate:  func(c *Config) { c.Validation.Mode = "strictly" },
			wantErr: "validation.mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			ApplyDefaults(&cfg)
			tt.mutate(&cfg)

			err := Validate(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
target:
  environment: staging
  bureau: TU
submission:
  retries: 4
  backoff_seconds: 1.5
validation:
  mode: reject
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Target.Environment)
	assert.Equal(t, "TU", cfg.Target.Bureau)
	assert.Equal(t, 4, cfg.Submission.Retries)
	assert.Equal(t, 1.5, cfg.Submission.BackoffSeconds)
	assert.True(t, cfg.Validation.Strict())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields still pick up defaults.
	assert.Equal(t, float64(30), cfg.Submission.TimeoutSeconds)
	assert.Equal(t, "LPCR_TOKEN", cfg.Auth.TokenEnv)
}
