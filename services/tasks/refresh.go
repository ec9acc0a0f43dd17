package tasks

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeStatusRefresh = "status:refresh"

// NewStatusRefreshTask builds the periodic refresh task. The worker
// re-enqueues the next tick itself; fire times are aligned to the
// refresh interval and carried in the task ID, so the same tick
// enqueued from both a failed run and its retries collapses into one
// scheduled task instead of a second parallel chain.
func NewStatusRefreshTask(fireAt time.Time, interval time.Duration) (*asynq.Task, []asynq.Option) {
	if interval > 0 {
		fireAt = fireAt.Truncate(interval)
	}
	task := asynq.NewTask(TypeStatusRefresh, nil)
	opts := []asynq.Option{
		asynq.TaskID(refreshTaskID(fireAt, interval)),
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}
	return task, opts
}

// refreshTaskID names a tick by its interval-aligned fire slot.
func refreshTaskID(fireAt time.Time, interval time.Duration) string {
	if interval > 0 {
		fireAt = fireAt.Truncate(interval)
	}
	return fmt.Sprintf("%s:%d", TypeStatusRefresh, fireAt.Unix())
}
