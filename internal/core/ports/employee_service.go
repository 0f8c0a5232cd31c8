package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// EmployeeFilter carries the non-persistent list filters. Search matches
// name or email as a substring; Role and Status are exact; all three are
// AND-combined.
type EmployeeFilter struct {
	Search string
	Role   string
	Status string
}

// EmployeeInput is the form submitted on create and update. CurrentRole is
// only set on update and holds the record's role before the edit, so the
// service can force credential re-entry on passcode transitions.
type EmployeeInput struct {
	FullName    string
	Username    string
	Password    string
	Email       string
	Phone       string
	HireDate    string
	Role        string
	CurrentRole string
	Image       *FileUpload
}

// EmployeeService implements the employee record manager. Mutations return
// the refreshed list: local state is reconciled with server truth rather
// than merged optimistically.
type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, input EmployeeInput) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) ([]domain.Employee, error)
}
