package finder_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/randalmurphal/poeaa-registry/pkg/registry/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMetrics captures RecordLookup calls.
type recordingMetrics struct {
	mu        sync.Mutex
	lookups   []lookupCall
	durations []float64
}

type lookupCall struct {
	finder string
	found  bool
	err    error
}

func (m *recordingMetrics) RecordReinitialize(context.Context, string) {}
func (m *recordingMetrics) RecordSlotCreated(context.Context, string)  {}
func (m *recordingMetrics) RecordLookup(_ context.Context, f string, found bool, durationMs float64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, lookupCall{finder: f, found: found, err: err})
	m.durations = append(m.durations, durationMs)
}

// failingFinder always returns err.
type failingFinder struct{ err error }

func (f failingFinder) FindByLastName(context.Context, string) (finder.Result, error) {
	return finder.NotFound(), f.err
}

// slowFinder finds everyone after a fixed delay.
type slowFinder struct{ delay time.Duration }

func (f slowFinder) FindByLastName(_ context.Context, lastName string) (finder.Result, error) {
	time.Sleep(f.delay)
	return finder.Found(finder.Person{FirstName: "Slow", LastName: lastName}), nil
}

func TestInstrument(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &recordingMetrics{}

	f := finder.Instrument(finder.AlwaysFinding{}, "always", logger, metrics, nil)

	res, err := f.FindByLastName(context.Background(), "Doe")
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, finder.AlwaysFinding{}, f.Unwrap())

	require.Len(t, metrics.lookups, 1)
	assert.Equal(t, lookupCall{finder: "always", found: true}, metrics.lookups[0])
	assert.Contains(t, buf.String(), `msg="person lookup"`)
	assert.Contains(t, buf.String(), "last_name=Doe")
}

func TestInstrument_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	metrics := &recordingMetrics{}
	boom := errors.New("boom")

	f := finder.Instrument(failingFinder{err: boom}, "directory", logger, metrics, nil)

	res, err := f.FindByLastName(context.Background(), "Doe")
	assert.ErrorIs(t, err, boom)
	assert.False(t, res.Found())

	require.Len(t, metrics.lookups, 1)
	assert.ErrorIs(t, metrics.lookups[0].err, boom)
	assert.Contains(t, buf.String(), `msg="person lookup failed"`)
}

func TestInstrument_NilCollaborators(t *testing.T) {
	f := finder.Instrument(finder.NeverFinding{}, "never", nil, nil, nil)

	res, err := f.FindByLastName(context.Background(), "Doe")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestInstrument_RecordsDuration(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &recordingMetrics{}

	f := finder.Instrument(slowFinder{delay: 5 * time.Millisecond}, "slow", logger, metrics, nil)

	_, err := f.FindByLastName(context.Background(), "Doe")
	require.NoError(t, err)

	require.Len(t, metrics.durations, 1)
	assert.GreaterOrEqual(t, metrics.durations[0], float64(5))
	assert.Contains(t, buf.String(), `"duration_ms":`)
}
