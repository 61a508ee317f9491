package earnings

import "context"

// EarningsService computes the reward/penalty reconciliation for one employee
// and a date window.
type EarningsService interface {
	// GenerateReport resolves the employee by display name, evaluates every
	// record source against the window and returns the reconciled report.
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)

	// GetChecklistConfig returns the active checklist configuration as seen
	// by the reporting client.
	GetChecklistConfig(ctx context.Context) ([]ConfigItemResponse, error)
}
