package jobs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/user"

	"github.com/olekukonko/tablewriter"
	"github.com/robfig/cron/v3"
)

// DispatchReportJob renders the end-of-day dispatch report.
// Runs every evening at 18:00 and logs the lines dispatched since midnight.
type DispatchReportJob struct {
	handler queries.DispatchedSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchReportJob creates the end-of-day dispatch report job.
func NewDispatchReportJob(handler queries.DispatchedSummaryQueryHandler, logger *slog.Logger) *DispatchReportJob {
	return &DispatchReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_report_job"),
	}
}

// Start schedules the report for 18:00 every day.
func (j *DispatchReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 18 * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch report job started (daily at 18:00)")
	return nil
}

// Stop stops the dispatch report job.
func (j *DispatchReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch report job stopped")
}

func (j *DispatchReportJob) run(ctx context.Context) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query, err := queries.NewDispatchedSummaryQuery(from, now, user.RoleAdmin)
	if err != nil {
		return err
	}

	lines, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		j.logger.InfoContext(ctx, "Dispatch report: nothing dispatched today")
		return nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf)
	table.Header("Customer", "Product", "Ordered", "Dispatched", "Unit", "By", "At")
	for _, line := range lines {
		if appendErr := table.Append([]string{
			line.CustomerName,
			line.ProductName,
			fmt.Sprintf("%d", line.OrderedQty),
			fmt.Sprintf("%d", line.DispatchedQty),
			line.Unit,
			line.DispatchedBy,
			line.DispatchedAt.Format("15:04"),
		}); appendErr != nil {
			return appendErr
		}
	}
	if renderErr := table.Render(); renderErr != nil {
		return renderErr
	}

	j.logger.InfoContext(ctx, "Dispatch report", "lines", len(lines), "table", "\n"+buf.String())
	return nil
}
