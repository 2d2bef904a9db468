// Package orchestration drives the benchmark: one model at a time, one
// query at a time, each attempt appended to the result log as it
// completes.
package orchestration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/intentwire/intentbench/internal/metrics"
	"github.com/intentwire/intentbench/internal/models"
	"github.com/intentwire/intentbench/internal/ollama"
	"github.com/intentwire/intentbench/internal/prompt"
	"github.com/intentwire/intentbench/internal/resultlog"
)

// InferenceEngine is the surface the runner needs from an inference
// backend. *ollama.Client satisfies it; tests substitute a fake.
type InferenceEngine interface {
	Generate(ctx context.Context, model, query string, options map[string]any) (ollama.GenerateResult, error)
}

// EventType identifies a progress event.
type EventType string

// Progress event types emitted during a run.
const (
	EventBenchmarkStart    EventType = "benchmark_start"
	EventBenchmarkComplete EventType = "benchmark_complete"
	EventModelStart        EventType = "model_start"
	EventAttemptComplete   EventType = "attempt_complete"
	EventAttemptSkipped    EventType = "attempt_skipped"
	EventParseFailure      EventType = "parse_failure"
)

// ProgressEvent is a progress update delivered to listeners.
type ProgressEvent struct {
	EventType     EventType
	Model         string
	Category      string
	Query         string
	Intent        string
	Confidence    float64
	Duration      float64
	Err           error
	TotalAttempts int
}

// ProgressListener receives progress updates.
type ProgressListener func(event ProgressEvent)

// Stats summarizes a completed run.
type Stats struct {
	Attempts      int
	Recorded      int
	Skipped       int
	ParseFailures int
}

// Runner executes a suite against a set of models sequentially. There
// is no shared mutable state between attempts; a failed attempt never
// stops the run.
type Runner struct {
	suite     *models.SuiteSpec
	engine    InferenceEngine
	log       *resultlog.Writer
	listeners []ProgressListener
}

// NewRunner creates a runner writing attempt records to log.
func NewRunner(suite *models.SuiteSpec, engine InferenceEngine, log *resultlog.Writer) *Runner {
	return &Runner{
		suite:  suite,
		engine: engine,
		log:    log,
	}
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) emit(event ProgressEvent) {
	for _, l := range r.listeners {
		l(event)
	}
}

// Run evaluates every (model, category, query) triple in order: models
// as given, categories sorted, queries in suite order. Transport errors
// skip the attempt (no record); unparseable replies are recorded with
// the sentinel label and zero confidence. Returns an error only when
// the result log itself cannot be written or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, modelIDs []string) (Stats, error) {
	var stats Stats

	total := len(modelIDs) * r.suite.TotalQueries()
	r.emit(ProgressEvent{EventType: EventBenchmarkStart, TotalAttempts: total})

	categories := r.suite.CategoryNames()

	for _, modelID := range modelIDs {
		r.emit(ProgressEvent{EventType: EventModelStart, Model: modelID})

		for _, category := range categories {
			for _, query := range r.suite.Categories[category] {
				if err := ctx.Err(); err != nil {
					return stats, err
				}

				stats.Attempts++
				rec, ok := r.attempt(ctx, modelID, category, query)
				if !ok {
					stats.Skipped++
					continue
				}
				if rec.Intent == models.LabelParseError {
					stats.ParseFailures++
				}
				if err := r.log.Append(rec); err != nil {
					return stats, fmt.Errorf("appending result record: %w", err)
				}
				stats.Recorded++
			}
		}
	}

	r.emit(ProgressEvent{EventType: EventBenchmarkComplete})
	return stats, nil
}

// attempt performs one classification call. ok is false when the call
// itself failed and nothing should be recorded.
func (r *Runner) attempt(ctx context.Context, modelID, category, query string) (models.AttemptRecord, bool) {
	result, err := r.engine.Generate(ctx, modelID, prompt.Build(query), r.suite.Options)
	if err != nil {
		slog.Debug("generate call failed", "model", modelID, "query", query, "error", err)
		r.emit(ProgressEvent{
			EventType: EventAttemptSkipped,
			Model:     modelID,
			Category:  category,
			Query:     query,
			Err:       err,
		})
		return models.AttemptRecord{}, false
	}

	rec := models.AttemptRecord{
		Model:    modelID,
		Category: category,
		Query:    query,
		Duration: metrics.Round2(result.Duration.Seconds()),
	}

	cls, perr := prompt.Parse(result.Response)
	if perr != nil {
		slog.Debug("unparseable model response", "model", modelID, "query", query, "response", result.Response)
		rec.Intent = models.LabelParseError
		rec.Confidence = 0
		r.emit(ProgressEvent{
			EventType: EventParseFailure,
			Model:     modelID,
			Category:  category,
			Query:     query,
			Err:       perr,
		})
	} else {
		rec.Intent = cls.Intent
		rec.Confidence = cls.Confidence
		rec.Normalize()
		r.emit(ProgressEvent{
			EventType:  EventAttemptComplete,
			Model:      modelID,
			Category:   category,
			Query:      query,
			Intent:     rec.Intent,
			Confidence: rec.Confidence,
			Duration:   rec.Duration,
		})
	}

	return rec, true
}

// Timeout returns the suite's per-call timeout as a duration.
func Timeout(suite *models.SuiteSpec) time.Duration {
	return time.Duration(suite.TimeoutSec) * time.Second
}
