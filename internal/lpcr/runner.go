package lpcr

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lpcr-submit/internal/common/logger"
	"lpcr-submit/internal/common/metrics"
)

// Runner drives applicants through the submission pipeline one at a time.
// Applicant i's submission, including all its retries, fully completes and
// its entry is appended before applicant i+1's request is built. A failed
// submission never aborts the run.
type Runner struct {
	target    Target
	bureau    string
	settings  FixedSettings
	headers   http.Header
	transport *Transport
	log       logger.Logger
}

func NewRunner(target Target, bureau string, settings FixedSettings, token string, transport *Transport, log logger.Logger) *Runner {
	return &Runner{
		target:    target,
		bureau:    bureau,
		settings:  settings,
		headers:   BuildHeaders(token, target.Host),
		transport: transport,
		log:       log,
	}
}

// Run submits every applicant in input order and returns one result entry per
// applicant, index-aligned with the input.
func (r *Runner) Run(ctx context.Context, applicants []Applicant) ResultSet {
	r.log.Info("starting submission run", map[string]interface{}{
		"url":        r.target.URL,
		"host":       r.target.Host,
		"bureau":     r.bureau,
		"applicants": len(applicants),
	})

	results := make(ResultSet, 0, len(applicants))

	for idx, applicant := range applicants {
		echo := MakeEcho(idx, applicant)
		payload := BuildPayload(applicant, r.bureau, r.settings)

		r.log.Info(fmt.Sprintf("[%d/%d] POST %s", idx+1, len(applicants), r.target.URL), map[string]interface{}{
			"index":  idx,
			"bureau": r.bureau,
		})

		started := time.Now()
		snapshot, err := r.transport.Submit(ctx, r.target.URL, r.headers, payload)
		metrics.SubmissionDuration.Observe(time.Since(started).Seconds())

		if err != nil {
			results.AddFailure(echo, payload, err)
			metrics.SubmissionsTotal.WithLabelValues("error").Inc()
			r.log.Error("submission failed", map[string]interface{}{
				"index": idx,
				"error": err.Error(),
			})
			continue
		}

		results.AddResponse(echo, payload, snapshot)
		metrics.SubmissionsTotal.WithLabelValues("response").Inc()
		r.log.Info("submission completed", map[string]interface{}{
			"index":  idx,
			"status": snapshot.StatusCode,
		})
	}

	return results
}
