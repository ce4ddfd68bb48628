package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 30 * time.Second

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgJobDroppedStopped = "Job dropped, worker pool stopped"
)
