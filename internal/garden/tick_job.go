package garden

import "context"

// TickJob runs Service.TickAll from the scheduler's worker pool
type TickJob struct {
	svc Service
}

// NewTickJob creates the background tick job
func NewTickJob(svc Service) *TickJob {
	return &TickJob{svc: svc}
}

// Name implements worker.Named
func (j *TickJob) Name() string {
	return "garden_tick"
}

// Process implements worker.Job
func (j *TickJob) Process(ctx context.Context) error {
	return j.svc.TickAll(ctx)
}
