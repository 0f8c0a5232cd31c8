package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/api/metrics"
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

var (
	passcodePattern = regexp.MustCompile(`^\d{6}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type employeeService struct {
	sessionAccess
	gateway ports.EmployeeGateway
	log     zerolog.Logger
}

// NewEmployeeService returns the employee record manager.
func NewEmployeeService(gateway ports.EmployeeGateway, sessions ports.SessionService, log zerolog.Logger) ports.EmployeeService {
	return &employeeService{
		sessionAccess: sessionAccess{sessions: sessions, log: log},
		gateway:       gateway,
		log:           log,
	}
}

// List fetches the employee accounts and applies the non-persistent
// filters: substring on name or email, exact role and status, AND-combined.
func (s *employeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) {
			continue
		}
		if filter.Role != "" && string(e.Role) != filter.Role {
			continue
		}
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

// Create validates the form, submits it upstream, and returns the refreshed
// list. Validation failures block the submission before any network call.
func (s *employeeService) Create(ctx context.Context, input ports.EmployeeInput) ([]domain.Employee, error) {
	form, err := s.buildForm(input, false)
	if err != nil {
		metrics.ValidationRejectionsTotal.WithLabelValues("employee").Inc()
		return nil, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Create(ctx, sess.Token, *form); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("employee", "create", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("employee", "create", "success").Inc()
	s.log.Info().Str("role", input.Role).Msg("employee created")

	return s.fetch(ctx)
}

// Update validates the form against the record's current role and submits
// it upstream, then returns the refreshed list.
func (s *employeeService) Update(ctx context.Context, id int64, input ports.EmployeeInput) ([]domain.Employee, error) {
	form, err := s.buildForm(input, true)
	if err != nil {
		metrics.ValidationRejectionsTotal.WithLabelValues("employee").Inc()
		return nil, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Update(ctx, sess.Token, id, *form); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("employee", "update", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("employee", "update", "success").Inc()
	s.log.Info().Int64("employee_id", id).Msg("employee updated")

	return s.fetch(ctx)
}

// Delete soft-deletes the record upstream and returns the refreshed list.
func (s *employeeService) Delete(ctx context.Context, id int64) ([]domain.Employee, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Delete(ctx, sess.Token, id); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("employee", "delete", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("employee", "delete", "success").Inc()
	s.log.Info().Int64("employee_id", id).Msg("employee deleted")

	return s.fetch(ctx)
}

func (s *employeeService) fetch(ctx context.Context) ([]domain.Employee, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.gateway.List(ctx, sess.Token)
	if err != nil {
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	return employees, nil
}

// buildForm applies the role-dependent identity rules and converts the
// input into the upstream multipart form.
func (s *employeeService) buildForm(input ports.EmployeeInput, isUpdate bool) (*ports.EmployeeForm, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, domain.NewValidationError("fullName", "Full Name is required.")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.NewValidationError("emailAddress", "Email Address is required.")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.NewValidationError("emailAddress", "Enter a valid email address.")
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		return nil, domain.NewValidationError("userRole", "Role is required.")
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("userRole", fmt.Sprintf("Role %q is not recognized.", input.Role))
	}

	currentRole := domain.Role(input.CurrentRole)
	password := strings.TrimSpace(input.Password)

	if role.UsesPasscode() {
		if password != "" && !passcodePattern.MatchString(password) {
			return nil, domain.NewValidationError("password", "Passcode for Cashier must be exactly 6 digits.")
		}
		if password == "" {
			if !isUpdate {
				return nil, domain.NewValidationError("password", "Passcode is required for new Cashier.")
			}
			if !currentRole.UsesPasscode() {
				return nil, domain.NewValidationError("password", "A 6-digit passcode is required when changing role to Cashier.")
			}
		}
	} else {
		if strings.TrimSpace(input.Username) == "" {
			return nil, domain.NewValidationError("username", "Username is required for Admin/Manager roles.")
		}
		if strings.EqualFold(input.Username, domain.ReservedUsername) {
			return nil, domain.NewValidationError("username", "'cashier' is a reserved username and cannot be used for Admin/Manager roles.")
		}
		if password == "" {
			if !isUpdate {
				return nil, domain.NewValidationError("password", "Password is required for new Admin/Manager.")
			}
			if currentRole.UsesPasscode() {
				return nil, domain.NewValidationError("password", "A new password is required when changing role from Cashier to Admin/Manager.")
			}
		}
	}

	// Cashiers always submit under the shared reserved account.
	username := strings.TrimSpace(input.Username)
	if role.UsesPasscode() {
		username = domain.ReservedUsername
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "N/A" {
		phone = ""
	}

	return &ports.EmployeeForm{
		FullName:   strings.TrimSpace(input.FullName),
		Username:   username,
		Password:   password,
		Email:      email,
		Phone:      phone,
		ClearPhone: isUpdate && phone == "",
		Role:       role,
		HireDate:   input.HireDate,
		Image:      input.Image,
	}, nil
}
