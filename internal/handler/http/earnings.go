package http

import (
	"net/http"

	"github.com/worklane/incentive-backend-go/internal/domain/earnings"
	"github.com/worklane/incentive-backend-go/internal/handler/http/response"
)

type EarningsHandler interface {
	// Employee earnings report
	GetEarningsReport(w http.ResponseWriter, r *http.Request)

	// Active checklist configuration (read-only)
	GetChecklistConfig(w http.ResponseWriter, r *http.Request)
}

type earningsHandlerImpl struct {
	earningsService earnings.EarningsService
}

func NewEarningsHandler(earningsService earnings.EarningsService) EarningsHandler {
	return &earningsHandlerImpl{
		earningsService: earningsService,
	}
}

// GetEarningsReport handles GET /reports/earnings
func (h *earningsHandlerImpl) GetEarningsReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := earnings.ReportRequest{
		EmployeeName: r.URL.Query().Get("employee_name"),
		StartDate:    r.URL.Query().Get("start_date"),
		EndDate:      r.URL.Query().Get("end_date"),
	}

	result, err := h.earningsService.GenerateReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetChecklistConfig handles GET /checklist-config
func (h *earningsHandlerImpl) GetChecklistConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.earningsService.GetChecklistConfig(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
