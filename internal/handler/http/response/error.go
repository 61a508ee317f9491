package response

import (
	"errors"
	"net/http"

	"github.com/worklane/incentive-backend-go/internal/domain/checklist"
	"github.com/worklane/incentive-backend-go/internal/domain/employee"
	"github.com/worklane/incentive-backend-go/internal/domain/task"
	"github.com/worklane/incentive-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Task errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Checklist errors
	case errors.Is(err, checklist.ErrNoActiveConfig):
		NotFound(w, "No active checklist configuration")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
