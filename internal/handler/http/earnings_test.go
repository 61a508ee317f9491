package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/incentive-backend-go/internal/domain/earnings"
	"github.com/worklane/incentive-backend-go/internal/domain/employee"
	"github.com/worklane/incentive-backend-go/internal/handler/http/response"
	"github.com/worklane/incentive-backend-go/internal/pkg/validator"
)

type stubEarningsService struct {
	report     earnings.Report
	reportErr  error
	config     []earnings.ConfigItemResponse
	configErr  error
	gotRequest earnings.ReportRequest
}

func (s *stubEarningsService) GenerateReport(_ context.Context, req earnings.ReportRequest) (earnings.Report, error) {
	s.gotRequest = req
	if s.reportErr != nil {
		return earnings.Report{}, s.reportErr
	}
	return s.report, nil
}

func (s *stubEarningsService) GetChecklistConfig(_ context.Context) ([]earnings.ConfigItemResponse, error) {
	if s.configErr != nil {
		return nil, s.configErr
	}
	return s.config, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGetEarningsReport_PassesQueryParams(t *testing.T) {
	stub := &stubEarningsService{
		report: earnings.Report{EmployeeName: "Jane Doe"},
	}
	handler := NewEarningsHandler(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/earnings?employee_name=Jane+Doe&start_date=2024-03-01&end_date=2024-03-31", nil)
	rec := httptest.NewRecorder()

	handler.GetEarningsReport(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane Doe", stub.gotRequest.EmployeeName)
	assert.Equal(t, "2024-03-01", stub.gotRequest.StartDate)
	assert.Equal(t, "2024-03-31", stub.gotRequest.EndDate)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", data["employeeName"])
}

func TestGetEarningsReport_ValidationFailure(t *testing.T) {
	stub := &stubEarningsService{
		reportErr: validator.ValidationErrors{
			{Field: "employee_name", Message: "employee_name is required"},
		},
	}
	handler := NewEarningsHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/earnings", nil)
	rec := httptest.NewRecorder()

	handler.GetEarningsReport(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "employee_name")
}

func TestGetEarningsReport_EmployeeNotFound(t *testing.T) {
	stub := &stubEarningsService{reportErr: employee.ErrEmployeeNotFound}
	handler := NewEarningsHandler(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/earnings?employee_name=Nobody", nil)
	rec := httptest.NewRecorder()

	handler.GetEarningsReport(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGetEarningsReport_StoreFailure(t *testing.T) {
	stub := &stubEarningsService{reportErr: assert.AnError}
	handler := NewEarningsHandler(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/reports/earnings?employee_name=Jane+Doe", nil)
	rec := httptest.NewRecorder()

	handler.GetEarningsReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}

func TestGetChecklistConfig(t *testing.T) {
	stub := &stubEarningsService{
		config: []earnings.ConfigItemResponse{
			{ID: "c-1", Label: "loom video", Fine: 5, FineCurrency: 50},
		},
	}
	handler := NewEarningsHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checklist-config", nil)
	rec := httptest.NewRecorder()

	handler.GetChecklistConfig(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "loom video", item["label"])
	assert.Equal(t, 50.0, item["fineCurrency"])
}
