package earnings

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrReportFailed     = errors.New("failed to compute earnings report")
)
