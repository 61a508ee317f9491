package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        *string
	Position     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
