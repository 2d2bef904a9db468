package orchestration

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentwire/intentbench/internal/models"
	"github.com/intentwire/intentbench/internal/ollama"
	"github.com/intentwire/intentbench/internal/resultlog"
)

// fakeEngine returns canned responses per query, or an error when the
// response is the empty string.
type fakeEngine struct {
	responses map[string]string
	calls     []string
}

func (f *fakeEngine) Generate(_ context.Context, model, prompt string, _ map[string]any) (ollama.GenerateResult, error) {
	f.calls = append(f.calls, model+"|"+prompt)
	for query, response := range f.responses {
		if len(prompt) >= len(query) && prompt[len(prompt)-len(query):] == query {
			if response == "" {
				return ollama.GenerateResult{}, errors.New("connection reset")
			}
			return ollama.GenerateResult{Response: response, Duration: 120 * time.Millisecond}, nil
		}
	}
	return ollama.GenerateResult{}, fmt.Errorf("unexpected prompt: %s", prompt)
}

func testSuite(queries map[string][]string) *models.SuiteSpec {
	suite := &models.SuiteSpec{
		Name:       "test",
		Categories: queries,
	}
	if err := suite.Validate(); err != nil {
		panic(err)
	}
	return suite
}

func newTestWriter(t *testing.T) (*resultlog.Writer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.jsonl")
	w, err := resultlog.NewWriter(path)
	require.NoError(t, err)
	return w, path
}

func TestRunRecordsAttempts(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math":    {"What's 2+2?"},
		"weather": {"Will it rain?"},
	})
	engine := &fakeEngine{responses: map[string]string{
		"What's 2+2?":   `{"intent":"math","confidence":0.9}`,
		"Will it rain?": `{"intent":"time","confidence":0.4}`,
	}}
	writer, path := newTestWriter(t)

	runner := NewRunner(suite, engine, writer)
	stats, err := runner.Run(context.Background(), []string{"gemma:2b"})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.Equal(t, Stats{Attempts: 2, Recorded: 2}, stats)

	records, err := resultlog.Read(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Categories are visited in sorted order.
	assert.Equal(t, "math", records[0].Category)
	assert.Equal(t, "math", records[0].Intent)
	assert.Equal(t, 0.9, records[0].Confidence)
	assert.Equal(t, 0.12, records[0].Duration)
	assert.Equal(t, "weather", records[1].Category)
	assert.Equal(t, "time", records[1].Intent)
}

func TestRunSkipsFailedCalls(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math": {"What's 2+2?", "Multiply 23 by 7."},
	})
	engine := &fakeEngine{responses: map[string]string{
		"What's 2+2?":       "",
		"Multiply 23 by 7.": `{"intent":"math","confidence":0.8}`,
	}}
	writer, path := newTestWriter(t)

	runner := NewRunner(suite, engine, writer)
	stats, err := runner.Run(context.Background(), []string{"m"})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.Equal(t, Stats{Attempts: 2, Recorded: 1, Skipped: 1}, stats)

	// The failed call left no record behind.
	records, err := resultlog.Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Multiply 23 by 7.", records[0].Query)
}

func TestRunRecordsSentinelOnParseFailure(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math": {"What's 2+2?"},
	})
	engine := &fakeEngine{responses: map[string]string{
		"What's 2+2?": "four, probably",
	}}
	writer, path := newTestWriter(t)

	runner := NewRunner(suite, engine, writer)
	stats, err := runner.Run(context.Background(), []string{"m"})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	assert.Equal(t, Stats{Attempts: 1, Recorded: 1, ParseFailures: 1}, stats)

	records, err := resultlog.Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.LabelParseError, records[0].Intent)
	assert.Equal(t, 0.0, records[0].Confidence)
	assert.Equal(t, 0.12, records[0].Duration)
}

func TestRunNormalizesMissingIntent(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math": {"What's 2+2?"},
	})
	engine := &fakeEngine{responses: map[string]string{
		"What's 2+2?": `{"confidence":0.5}`,
	}}
	writer, path := newTestWriter(t)

	runner := NewRunner(suite, engine, writer)
	_, err := runner.Run(context.Background(), []string{"m"})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	records, err := resultlog.Read(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.LabelUnknown, records[0].Intent)
}

func TestRunEmitsProgressEvents(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math": {"What's 2+2?"},
	})
	engine := &fakeEngine{responses: map[string]string{
		"What's 2+2?": `{"intent":"math","confidence":0.9}`,
	}}
	writer, _ := newTestWriter(t)
	defer writer.Close() //nolint:errcheck

	var events []EventType
	runner := NewRunner(suite, engine, writer)
	runner.OnProgress(func(e ProgressEvent) {
		events = append(events, e.EventType)
	})

	_, err := runner.Run(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []EventType{
		EventBenchmarkStart,
		EventModelStart,
		EventAttemptComplete,
		EventModelStart,
		EventAttemptComplete,
		EventBenchmarkComplete,
	}, events)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	suite := testSuite(map[string][]string{
		"math": {"What's 2+2?"},
	})
	engine := &fakeEngine{}
	writer, _ := newTestWriter(t)
	defer writer.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(suite, engine, writer)
	_, err := runner.Run(ctx, []string{"m"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, engine.calls)
}

func TestTimeout(t *testing.T) {
	suite := testSuite(map[string][]string{"math": {"q"}})
	assert.Equal(t, time.Duration(suite.TimeoutSec)*time.Second, Timeout(suite))
}
