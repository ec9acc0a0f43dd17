package tasks

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskIDOption(t *testing.T, opts []asynq.Option) string {
	t.Helper()
	for _, opt := range opts {
		if opt.Type() == asynq.TaskIDOpt {
			return opt.Value().(string)
		}
	}
	t.Fatal("no task ID option present")
	return ""
}

func TestRefreshTaskIDCollapsesRetriesIntoOneSlot(t *testing.T) {
	interval := time.Minute
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// A failed tick and its retries fire their next-tick enqueue a few
	// seconds apart; both must name the same slot.
	_, first := NewStatusRefreshTask(base.Add(3*time.Second), interval)
	_, retry := NewStatusRefreshTask(base.Add(41*time.Second), interval)
	assert.Equal(t, taskIDOption(t, first), taskIDOption(t, retry))

	// The following slot gets its own ID, so the chain still advances.
	_, next := NewStatusRefreshTask(base.Add(interval+3*time.Second), interval)
	assert.NotEqual(t, taskIDOption(t, first), taskIDOption(t, next))
}

func TestRefreshTaskSlotAlignment(t *testing.T) {
	interval := time.Minute
	at := time.Date(2026, 3, 2, 9, 0, 41, 0, time.UTC)

	assert.Equal(t, refreshTaskID(at.Truncate(interval), interval), refreshTaskID(at, interval))

	// A zero interval leaves the fire time untouched.
	task, opts := NewStatusRefreshTask(at, 0)
	require.Equal(t, TypeStatusRefresh, task.Type())
	assert.Equal(t, "status:refresh:1772442041", taskIDOption(t, opts))
}
