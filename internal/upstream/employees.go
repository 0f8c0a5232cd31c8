package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

const employeeService = "employees"

// EmployeeClient talks to the employee-accounts upstream. List responses
// are normalized into the view model here: shared cashier username, "N/A"
// contact fallbacks, date-only hire dates, and image URL resolution against
// the upload path with a fixed placeholder fallback.
type EmployeeClient struct {
	baseURL        string
	placeholderURL string
	httpClient     *http.Client
}

// employeeRecord mirrors the upstream wire shape.
type employeeRecord struct {
	UserID      int64  `json:"userID"`
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"emailAddress"`
	Role        string `json:"userRole"`
	Phone       string `json:"phoneNumber"`
	Status      string `json:"status"`
	HireDate    string `json:"hireDate"`
	UploadImage string `json:"uploadImage"`
}

// NewEmployeeClient builds a client for the given employee-accounts base
// URL. placeholderURL is substituted for absent or malformed image fields.
func NewEmployeeClient(baseURL, placeholderURL string, timeout time.Duration) *EmployeeClient {
	return &EmployeeClient{
		baseURL:        normalizeBaseURL(baseURL),
		placeholderURL: placeholderURL,
		httpClient:     newHTTPClient(timeout),
	}
}

// List fetches all employee accounts visible to the bearer token.
func (c *EmployeeClient) List(ctx context.Context, bearer string) ([]domain.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/employee-accounts/list-employee-accounts", nil)
	if err != nil {
		return nil, fmt.Errorf("employees: build request: %w", err)
	}
	setBearer(req, bearer)

	body, _, err := do(c.httpClient, employeeService, req)
	if err != nil {
		return nil, err
	}

	var records []employeeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: employees: decode list: %v", domain.ErrUpstreamUnavailable, err)
	}

	employees := make([]domain.Employee, 0, len(records))
	for _, r := range records {
		employees = append(employees, c.normalize(r))
	}
	return employees, nil
}

// Create submits a new employee account as a multipart form.
func (c *EmployeeClient) Create(ctx context.Context, bearer string, form ports.EmployeeForm) error {
	return c.submit(ctx, bearer, http.MethodPost, c.baseURL+"/employee-accounts/create", form)
}

// Update replaces an existing employee account as a multipart form.
func (c *EmployeeClient) Update(ctx context.Context, bearer string, id int64, form ports.EmployeeForm) error {
	return c.submit(ctx, bearer, http.MethodPut, fmt.Sprintf("%s/employee-accounts/update/%d", c.baseURL, id), form)
}

// Delete soft-deletes an employee account. The upstream replies 204.
func (c *EmployeeClient) Delete(ctx context.Context, bearer string, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/employee-accounts/delete/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("employees: build request: %w", err)
	}
	setBearer(req, bearer)

	_, _, err = do(c.httpClient, employeeService, req)
	return err
}

func (c *EmployeeClient) submit(ctx context.Context, bearer, method, url string, form ports.EmployeeForm) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fullName":     form.FullName,
		"userRole":     string(form.Role),
		"emailAddress": form.Email,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("employees: write field %s: %w", k, err)
		}
	}

	optional := map[string]string{
		"username": form.Username,
		"password": form.Password,
		"hireDate": form.HireDate,
	}
	for k, v := range optional {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("employees: write field %s: %w", k, err)
		}
	}

	// An explicitly empty phoneNumber clears a previously stored value.
	if form.Phone != "" || form.ClearPhone {
		if err := mw.WriteField("phoneNumber", form.Phone); err != nil {
			return fmt.Errorf("employees: write field phoneNumber: %w", err)
		}
	}

	if form.Image != nil {
		fw, err := mw.CreateFormFile("uploadImage", form.Image.Filename)
		if err != nil {
			return fmt.Errorf("employees: create image part: %w", err)
		}
		if _, err := io.Copy(fw, bytes.NewReader(form.Image.Content)); err != nil {
			return fmt.Errorf("employees: write image part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("employees: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return fmt.Errorf("employees: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, bearer)

	_, _, err = do(c.httpClient, employeeService, req)
	return err
}

func (c *EmployeeClient) normalize(r employeeRecord) domain.Employee {
	username := r.Username
	if username == "" && domain.Role(r.Role).UsesPasscode() {
		username = domain.ReservedUsername
	}

	email := r.Email
	if email == "" {
		email = "N/A"
	}
	phone := r.Phone
	if phone == "" {
		phone = "N/A"
	}

	status := domain.EmployeeStatus(r.Status)
	if status == "" {
		status = domain.EmployeeActive
	}

	image := c.placeholderURL
	if r.UploadImage != "" {
		image = c.baseURL + "/uploads/" + r.UploadImage
	}

	return domain.Employee{
		ID:       r.UserID,
		Name:     r.FullName,
		Username: username,
		Email:    email,
		Phone:    phone,
		Role:     domain.Role(r.Role),
		Status:   status,
		HireDate: datePart(r.HireDate),
		ImageURL: image,
	}
}
