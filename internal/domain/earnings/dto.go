package earnings

import (
	"time"

	"github.com/worklane/incentive-backend-go/internal/pkg/validator"
)

// ReportRequest carries the query parameters of the earnings report endpoint.
// Dates are optional ISO date strings; both default to today.
type ReportRequest struct {
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	var start, end time.Time
	if r.StartDate != "" {
		var ok bool
		start, ok = validator.IsValidDate(r.StartDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		var ok bool
		end, ok = validator.IsValidDate(r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// The report keys follow the shape consumed by the reporting frontend, hence
// the camelCase tags.

type TaskLine struct {
	Date            string  `json:"date"`
	TaskTitle       string  `json:"taskTitle"`
	ProjectName     string  `json:"projectName"`
	BonusPoints     float64 `json:"bonusPoints"`
	BonusCurrency   float64 `json:"bonusCurrency"`
	PenaltyPoints   float64 `json:"penaltyPoints"`
	PenaltyCurrency float64 `json:"penaltyCurrency"`
}

type ChecklistLine struct {
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	BonusPoints     float64 `json:"bonusPoints"`
	BonusCurrency   float64 `json:"bonusCurrency"`
	PenaltyPoints   float64 `json:"penaltyPoints"`
	PenaltyCurrency float64 `json:"penaltyCurrency"`
}

type ProjectLine struct {
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	ProjectName     string  `json:"projectName"`
	BonusPoints     float64 `json:"bonusPoints"`
	BonusCurrency   float64 `json:"bonusCurrency"`
	PenaltyPoints   float64 `json:"penaltyPoints"`
	PenaltyCurrency float64 `json:"penaltyCurrency"`
}

type CustomLine struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
}

type Summary struct {
	TotalPointsEarned    float64 `json:"totalPointsEarned"`
	TotalCurrencyEarned  float64 `json:"totalCurrencyEarned"`
	TotalPointsPenalty   float64 `json:"totalPointsPenalty"`
	TotalCurrencyPenalty float64 `json:"totalCurrencyPenalty"`
}

type Report struct {
	EmployeeName string          `json:"employeeName"`
	Tasks        []TaskLine      `json:"tasks"`
	Checklists   []ChecklistLine `json:"checklists"`
	Projects     []ProjectLine   `json:"projects"`
	CustomBonus  []CustomLine    `json:"customBonus"`
	CustomFine   []CustomLine    `json:"customFine"`
	Summary      Summary         `json:"summary"`
}

// ConfigItemResponse is the read-only view of one active checklist config row.
type ConfigItemResponse struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Bonus         float64 `json:"bonus"`
	BonusCurrency float64 `json:"bonusCurrency"`
	Fine          float64 `json:"fine"`
	FineCurrency  float64 `json:"fineCurrency"`
}
