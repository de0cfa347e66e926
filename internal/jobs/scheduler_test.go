package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
	err   error
}

func (c *countingCleaner) CleanupOlderThan(_ context.Context, days int) (int64, error) {
	c.calls.Add(1)
	c.days.Store(int32(days))
	return 3, c.err
}

func TestRunStatusCleanup(t *testing.T) {
	c := &countingCleaner{}
	n, err := RunStatusCleanup(context.Background(), c, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.EqualValues(t, 30, c.days.Load())

	c.err = errors.New("redis down")
	_, err = RunStatusCleanup(context.Background(), c, 30)
	assert.Error(t, err)
}

func TestAddStatusCleanup_BadSchedule(t *testing.T) {
	s := NewScheduler()
	err := s.AddStatusCleanup("not a schedule", 30, &countingCleaner{})
	assert.Error(t, err)
}

func TestScheduler_Runs(t *testing.T) {
	c := &countingCleaner{}
	s := NewScheduler()
	require.NoError(t, s.AddStatusCleanup("* * * * * *", 7, c))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return c.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	assert.EqualValues(t, 7, c.days.Load())
}
