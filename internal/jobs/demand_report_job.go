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

// demandReportTopN bounds the ranking tables in the weekly report.
const demandReportTopN = 5

// DemandReportJob renders the weekly product demand report.
// Runs every Monday at 08:00 and logs the highest and lowest demand
// products of the previous seven days.
type DemandReportJob struct {
	handler queries.ProductDemandQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDemandReportJob creates the weekly demand report job.
func NewDemandReportJob(handler queries.ProductDemandQueryHandler, logger *slog.Logger) *DemandReportJob {
	return &DemandReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "demand_report_job"),
	}
}

// Start schedules the report for 08:00 every Monday.
func (j *DemandReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 8 * * 1", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Demand report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Demand report job started (Mondays at 08:00)")
	return nil
}

// Stop stops the demand report job.
func (j *DemandReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Demand report job stopped")
}

func (j *DemandReportJob) run(ctx context.Context) error {
	now := time.Now()
	from := now.AddDate(0, 0, -7)

	query, err := queries.NewProductDemandQuery(from, now, demandReportTopN, user.RoleAdmin)
	if err != nil {
		return err
	}

	demand, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(demand.Highest) == 0 {
		j.logger.InfoContext(ctx, "Demand report: no orders in the last week")
		return nil
	}

	highest, err := renderDemandTable(demand.Highest)
	if err != nil {
		return err
	}
	lowest, err := renderDemandTable(demand.Lowest)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Weekly demand report",
		"highest", "\n"+highest,
		"lowest", "\n"+lowest,
	)
	return nil
}

func renderDemandTable(rows []queries.ProductDemandRow) (string, error) {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf)
	table.Header("Product", "Total Qty", "Orders")
	for _, row := range rows {
		if err := table.Append([]string{
			row.ProductName,
			fmt.Sprintf("%d", row.TotalQty),
			fmt.Sprintf("%d", row.OrderCount),
		}); err != nil {
			return "", err
		}
	}
	if err := table.Render(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
