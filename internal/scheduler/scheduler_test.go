package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/cfpsim/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
}

func (j *stubJob) Name() string                  { return j.name }
func (j *stubJob) Schedule() string              { return j.schedule }
func (j *stubJob) Run(ctx context.Context) error { return nil }

func TestAddJob(t *testing.T) {
	s := New(logger.NewNop())

	job := &stubJob{name: "refresh_rankings", schedule: "@hourly"}
	require.NoError(t, s.AddJob(job))

	// Duplicate names are rejected.
	assert.Error(t, s.AddJob(&stubJob{name: "refresh_rankings", schedule: "@hourly"}))

	// Invalid cron expressions are rejected.
	assert.Error(t, s.AddJob(&stubJob{name: "broken", schedule: "not a schedule"}))

	history, err := s.GetJobHistory("refresh_rankings")
	require.NoError(t, err)
	assert.Empty(t, history.Results)

	_, err = s.GetJobHistory("unknown")
	assert.Error(t, err)
}

func TestRunJobUnknown(t *testing.T) {
	s := New(logger.NewNop())
	assert.Error(t, s.RunJob("missing"))
}

func TestJobHistory(t *testing.T) {
	h := &JobHistory{}

	_, ok := h.LastResult()
	assert.False(t, ok)
	assert.Equal(t, 0.0, h.SuccessRate())

	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: "j", Success: i%2 == 0})
	}

	// Capped at the last 100 results.
	assert.Len(t, h.Results, 100)
	assert.InDelta(t, 0.5, h.SuccessRate(), 1e-9)

	last, ok := h.LastResult()
	require.True(t, ok)
	assert.Equal(t, "j", last.JobName)
}
