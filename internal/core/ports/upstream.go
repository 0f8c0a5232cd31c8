package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// AuthGateway talks to the auth upstream.
type AuthGateway interface {
	// PasswordGrant exchanges credentials for an access token. A non-2xx
	// response surfaces as *domain.UpstreamError carrying the server's
	// message; a 401 surfaces as domain.ErrInvalidCredentials.
	PasswordGrant(ctx context.Context, username, password string) (string, error)
}

// FileUpload is an optional image attached to an employee form.
type FileUpload struct {
	Filename string
	Content  []byte
}

// EmployeeForm is the multipart payload sent to the employee-accounts
// upstream on create and update. Optional fields are omitted when empty;
// ClearPhone forces an empty phoneNumber field to wipe a stored value.
type EmployeeForm struct {
	FullName   string
	Username   string
	Password   string
	Email      string
	Phone      string
	ClearPhone bool
	Role       domain.Role
	HireDate   string
	Image      *FileUpload
}

// EmployeeGateway talks to the employee-accounts upstream. Every method
// maps an unauthorized response to domain.ErrUnauthorized so the caller can
// evict the session.
type EmployeeGateway interface {
	List(ctx context.Context, bearer string) ([]domain.Employee, error)
	Create(ctx context.Context, bearer string, form EmployeeForm) error
	Update(ctx context.Context, bearer string, id int64, form EmployeeForm) error
	Delete(ctx context.Context, bearer string, id int64) error
}

// ProductGateway talks to the product catalog upstream. The catalog is
// read-only from this side.
type ProductGateway interface {
	List(ctx context.Context, bearer string) ([]domain.Product, error)
}

// DiscountPayload is the JSON body sent to the discounts upstream. MinSpend
// is a pointer because the upstream distinguishes "no minimum" (null) from
// zero. Username scopes the mutation to the acting account.
type DiscountPayload struct {
	Name       string
	Product    string
	Percentage float64
	MinSpend   *float64
	ValidFrom  string
	ValidTo    string
	Status     domain.DiscountStatus
	Username   string
}

// DiscountGateway talks to the discounts upstream.
type DiscountGateway interface {
	List(ctx context.Context, bearer string) ([]domain.Discount, error)
	Create(ctx context.Context, bearer string, payload DiscountPayload) error
	Update(ctx context.Context, bearer string, id int64, payload DiscountPayload) error
	Delete(ctx context.Context, bearer string, id int64, username string) error
}
