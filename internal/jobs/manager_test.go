package jobs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForStatus(t *testing.T, jm *JobManager, id, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, s := range jm.GetStatus() {
			if s.ID == id && s.Status == want {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %q never reached status %q", id, want)
}

func TestRunJobSingleFlight(t *testing.T) {
	jm := NewManager(nil)

	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once
	jm.Register("slow", "Slow Job", func(ctx JobContext) {
		startedOnce.Do(func() { close(started) })
		<-release
	})

	require.NoError(t, jm.RunJob("slow", nil))
	<-started

	// A second submission while the first is running is rejected.
	assert.Error(t, jm.RunJob("slow", nil))

	close(release)
	waitForStatus(t, jm, "slow", "success")

	// Once finished, the job can run again.
	assert.NoError(t, jm.RunJob("slow", nil))
	waitForStatus(t, jm, "slow", "success")
}

func TestRunJobUnknownID(t *testing.T) {
	jm := NewManager(nil)
	assert.Error(t, jm.RunJob("missing", nil))
}

func TestRunJobRecoversPanic(t *testing.T) {
	jm := NewManager(nil)
	jm.Register("broken", "Broken Job", func(ctx JobContext) {
		panic("boom")
	})

	require.NoError(t, jm.RunJob("broken", nil))
	waitForStatus(t, jm, "broken", "failed")

	// The manager is not wedged after a panic.
	jm.Register("fine", "Fine Job", func(ctx JobContext) {})
	assert.NoError(t, jm.RunJob("fine", nil))
	waitForStatus(t, jm, "fine", "success")
}

func TestGetStatusSorted(t *testing.T) {
	jm := NewManager(nil)
	jm.Register("b-job", "B", func(ctx JobContext) {})
	jm.Register("a-job", "A", func(ctx JobContext) {})

	statuses := jm.GetStatus()
	require.Len(t, statuses, 2)
	assert.Equal(t, "a-job", statuses[0].ID)
	assert.Equal(t, "b-job", statuses[1].ID)
}
