package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lpcr-submit/internal/common/config"
	"lpcr-submit/internal/common/errors"
	httpclient "lpcr-submit/internal/common/http"
	"lpcr-submit/internal/common/logger"
	"lpcr-submit/internal/lpcr"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lpcr-submit", flag.ExitOnError)

	configPath := fs.String("config", "", "Path to config file (optional)")
	input := fs.String("input", "", "Path to input JSON file (array of applicant objects)")
	output := fs.String("output", "", "Path to write output JSON file (array of results)")
	token := fs.String("token", "", "Bearer token. If omitted, read from the token env var (default LPCR_TOKEN)")
	env := fs.String("env", "", fmt.Sprintf("Target environment (%s)", strings.Join(lpcr.Environments(), ", ")))
	urlOverride := fs.String("url", "", "Override the target URL")
	hostOverride := fs.String("host", "", "Override the Host header")
	bureau := fs.String("bureau", "", fmt.Sprintf("Credit bureau for the request payload (%s)", strings.Join(lpcr.Bureaus(), ", ")))
	retries := fs.Int("retries", -1, "Retry attempts per request on transport failure")
	backoff := fs.Float64("backoff", -1, "Initial backoff seconds between retries (exponential)")
	timeout := fs.Float64("timeout", -1, "Per-request timeout in seconds")
	insecure := fs.Bool("insecure", false, "Disable TLS verification (non-production targets only)")
	validation := fs.String("validation", "", "Applicant validation mode: reject or flag")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: console or json")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address for the run")

	fs.Parse(args)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return errors.ExitConfig
	}

	applyFlags(cfg, token, env, urlOverride, hostOverride, bureau, retries, backoff, timeout, insecure, validation, logLevel, logFormat, metricsAddr)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return errors.ExitConfig
	}
	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: -input and -output are required")
		return errors.ExitConfig
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"runId": uuid.NewString(),
	})

	if cfg.Metrics.ListenAddress != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.ListenAddress, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	if err := submit(context.Background(), cfg, *input, *output, log); err != nil {
		log.Error("run aborted", map[string]interface{}{"error": err.Error()})
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

// submit performs the configuration stage, then the sequential submission
// loop, then writes the consolidated output. Only configuration/IO failures
// surface as errors; per-applicant failures live inside the result set.
func submit(ctx context.Context, cfg *config.Config, input, output string, log logger.Logger) error {
	settings, err := lpcr.SettingsForBureau(cfg.Target.Bureau)
	if err != nil {
		return err
	}

	token, err := lpcr.ResolveToken(
		lpcr.StaticToken(cfg.Auth.Token),
		lpcr.EnvToken(cfg.Auth.TokenEnv),
	)
	if err != nil {
		return err
	}

	target, err := lpcr.ResolveTarget(cfg.Target.Environment, cfg.Target.URLOverride, cfg.Target.HostOverride)
	if err != nil {
		return err
	}

	applicants, err := lpcr.LoadApplicants(input, cfg.Validation.Strict(), log)
	if err != nil {
		return err
	}

	client := httpclient.NewClient(cfg.Submission.Timeout(), cfg.Submission.Insecure)
	transport := lpcr.NewTransport(client, cfg.Submission.Retries, cfg.Submission.Backoff(), log)
	runner := lpcr.NewRunner(target, cfg.Target.Bureau, settings, token, transport, log)

	results := runner.Run(ctx, applicants)

	if err := lpcr.WriteResults(output, results); err != nil {
		return err
	}

	log.Info("wrote results", map[string]interface{}{
		"count": len(results),
		"path":  output,
	})
	return nil
}

// applyFlags layers explicitly set flags over the loaded configuration.
// Numeric flags use -1 sentinels so an explicit zero still wins.
func applyFlags(cfg *config.Config, token, env, urlOverride, hostOverride, bureau *string, retries *int, backoff, timeout *float64, insecure *bool, validation, logLevel, logFormat, metricsAddr *string) {
	if *token != "" {
		cfg.Auth.Token = *token
	}
	if *env != "" {
		cfg.Target.Environment = *env
	}
	if *urlOverride != "" {
		cfg.Target.URLOverride = *urlOverride
	}
	if *hostOverride != "" {
		cfg.Target.HostOverride = *hostOverride
	}
	if *bureau != "" {
		cfg.Target.Bureau = *bureau
	}
	if *retries >= 0 {
		cfg.Submission.Retries = *retries
	}
	if *backoff >= 0 {
		cfg.Submission.BackoffSeconds = *backoff
	}
	if *timeout > 0 {
		cfg.Submission.TimeoutSeconds = *timeout
	}
	if *insecure {
		cfg.Submission.Insecure = true
	}
	if *validation != "" {
		cfg.Validation.Mode = *validation
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}
	if *metricsAddr != "" {
		cfg.Metrics.ListenAddress = *metricsAddr
	}
}
