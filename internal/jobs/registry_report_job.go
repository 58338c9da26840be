package jobs

import (
	"context"
	"log/slog"

	"paybook/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RegistryReportJob periodically logs registry-wide order counters.
// The registry lives only in process memory, so this report is the sole
// operational view of its size between restarts.
type RegistryReportJob struct {
	handler  queries.GetOrderStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRegistryReportJob creates a report job running on the given cron
// schedule (with a seconds field, e.g. "0 * * * * *" for every minute).
func NewRegistryReportJob(
	handler queries.GetOrderStatsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *RegistryReportJob {
	return &RegistryReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "registry_report_job"),
	}
}

// Start begins the report job on its configured schedule.
func (j *RegistryReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetOrderStatsQuery()

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Registry report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Registry report",
			"pending", stats.Pending,
			"cancelled", stats.Cancelled,
			"total", stats.Total,
			"identifiers_issued", stats.IdentifiersIssued,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the report job.
func (j *RegistryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Registry report job stopped")
}
