package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Target     TargetConfig     `mapstructure:"target"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Submission SubmissionConfig `mapstructure:"submission"`
	Validation ValidationConfig `mapstructure:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// TargetConfig selects the environment the reports are submitted to. URL and
// Host override their respective fields of the named environment only.
type TargetConfig struct {
	Environment  string `mapstructure:"environment"`
	URLOverride  string `mapstructure:"url_override"`
	HostOverride string `mapstructure:"host_override"`
	Bureau       string `mapstructure:"bureau"`
}

// AuthConfig resolves the bearer token. An explicit token wins over the named
// environment variable.
type AuthConfig struct {
	Token    string `mapstructure:"token"`
	TokenEnv string `mapstructure:"token_env"`
}

type SubmissionConfig struct {
	Retries        int     `mapstructure:"retries"`
	BackoffSeconds float64 `mapstructure:"backoff_seconds"`
	TimeoutSeconds float64 `mapstructure:"timeout_seconds"`
	Insecure       bool    `mapstructure:"insecure"`
}

// Timeout returns the per-request timeout as a duration.
func (s SubmissionConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// Backoff returns the initial backoff as a duration.
func (s SubmissionConfig) Backoff() time.Duration {
	return time.Duration(s.BackoffSeconds * float64(time.Second))
}

// ValidationConfig controls applicant record validation at the input
// boundary. Mode "reject" fails the run on an invalid record, "flag" logs a
// warning and submits the record anyway.
type ValidationConfig struct {
	Mode string `mapstructure:"mode"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig enables a Prometheus scrape endpoint for the duration of the
// run when ListenAddress is set.
type MetricsConfig struct {
	ListenAddress string `mapstructure:"listen_address"`
}

func (v ValidationConfig) Strict() bool {
	return v.Mode == "reject"
}

// Validate checks the assembled configuration, including values layered on
// top of the loaded file by command-line flags.
func Validate(cfg *Config) error {
	if cfg.Submission.Retries < 0 {
		return fmt.Errorf("submission.retries must not be negative")
	}
	if cfg.Submission.BackoffSeconds < 0 {
		return fmt.Errorf("submission.backoff_seconds must not be negative")
	}
	if cfg.Submission.TimeoutSeconds <= 0 {
		return fmt.Errorf("submission.timeout_seconds must be positive")
	}
	if cfg.Validation.Mode != "reject" && cfg.Validation.Mode != "flag" {
		return fmt.Errorf("validation.mode must be \"reject\" or \"flag\"")
	}
	return nil
}
