package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchReportJob *DispatchReportJob
	demandReportJob   *DemandReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the report rendering.
func NewJobManager(
	dispatchedSummaryHandler queries.DispatchedSummaryQueryHandler,
	productDemandHandler queries.ProductDemandQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchReportJob: NewDispatchReportJob(dispatchedSummaryHandler, logger),
		demandReportJob:   NewDemandReportJob(productDemandHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch report job: %w", err)
	}

	if err := jm.demandReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchReportJob.Stop()
		return fmt.Errorf("failed to start demand report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchReportJob.Stop()
	jm.demandReportJob.Stop()
}
