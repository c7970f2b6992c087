package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodcart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchOrderJob manages the scheduled dispatch of submitted orders.
// Runs every second to match the oldest waiting order with the nearest
// restaurant able to prepare it.
type DispatchOrderJob struct {
	handler commands.DispatchOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchOrderJob creates a new job for automatic order dispatch.
// Uses DispatchOrderCommandHandler to process one waiting order per tick.
func NewDispatchOrderJob(handler commands.DispatchOrderCommandHandler, logger *slog.Logger) *DispatchOrderJob {
	return &DispatchOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_order_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *DispatchOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoRestaurantFound) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
