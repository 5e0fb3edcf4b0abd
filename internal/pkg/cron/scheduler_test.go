package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobRejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	err := s.AddJob("broken", "not a cron spec", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
	assert.Empty(t, s.jobs)
}

func TestRunOnceExecutesRegisteredJobs(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)

	ran := 0
	err := s.AddJob("counter", "0 6 * * *", func(ctx context.Context) error {
		ran++
		return nil
	})
	require.NoError(t, err)

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, 2, ran)
}

func TestRegisterAttendanceJobs(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.UTC)
	jobs := NewAttendanceJobs(&stubAttendanceRepo{}, &stubEmployeeRepo{}, day(2025, time.June, 1), time.UTC)

	require.NoError(t, jobs.RegisterJobs(s, "0 6 * * *"))
	require.Len(t, s.jobs, 1)
	assert.Equal(t, "mark_absent_agents", s.jobs[0].Name)
}
