package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TotalRepairJob periodically sweeps for orders whose stored total no longer
// matches the sum of their line totals and repairs them. Drift should never
// happen through the aggregate; this job is the safety net for rows touched
// by migrations or manual intervention.
type TotalRepairJob struct {
	handler commands.RepairOrderTotalsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTotalRepairJob creates a job that runs the repair sweep every minute.
func NewTotalRepairJob(handler commands.RepairOrderTotalsCommandHandler, logger *slog.Logger) *TotalRepairJob {
	return &TotalRepairJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "total_repair_job"),
	}
}

// Start begins the repair sweep on a minute schedule.
func (j *TotalRepairJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRepairOrderTotalsCommand()

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Total repair job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Total repair job started (running every minute)")
	return nil
}

// Stop stops the repair sweep.
func (j *TotalRepairJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Total repair job stopped")
}
