// Package jobs contains the scheduled background reports of the order desk.
//
// Two cron jobs render operational reports as text tables and emit them
// through the structured logger:
//   - DispatchReportJob: every evening, the lines dispatched that day
//   - DemandReportJob: every Monday morning, the product demand ranking
//     for the previous week
//
// JobManager wires the jobs together and owns their lifecycle.
package jobs
