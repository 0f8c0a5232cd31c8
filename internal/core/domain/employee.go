package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeStatus is the lifecycle state of an employee record.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// Employee is the normalized view of an employee-accounts record. Field
// fallbacks (shared cashier username, "N/A" contact fields, placeholder
// image) are applied during normalization, not stored upstream.
type Employee struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Role     Role           `json:"role"`
	Status   EmployeeStatus `json:"status"`
	HireDate string         `json:"hire_date"`
	ImageURL string         `json:"image_url"`
}
