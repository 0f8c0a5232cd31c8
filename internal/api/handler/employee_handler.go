package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

// maxUploadBytes caps the profile image size accepted on the form.
const maxUploadBytes = 5 << 20

// EmployeeHandler exposes the employee record manager. Create and Update
// accept multipart forms because the screen submits an optional profile
// image alongside the fields.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns the employee accounts, filtered by the query parameters.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        q       query     string  false  "Substring match on name or email"
// @Param        role    query     string  false  "Exact role"
// @Param        status  query     string  false  "Exact status"
// @Success      200     {object}  employeeListResponse
// @Failure      401     {object}  map[string]string
// @Router       /admin/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context(), ports.EmployeeFilter{
		Search: c.QueryParam("q"),
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Create adds an employee account and returns the refreshed list.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        fullName      formData  string  true   "Full name"
// @Param        userRole      formData  string  true   "Role: admin, manager, or cashier"
// @Param        emailAddress  formData  string  true   "Email address"
// @Param        username      formData  string  false  "Username (admin and manager)"
// @Param        password      formData  string  false  "Password, or 6-digit passcode for cashiers"
// @Param        phoneNumber   formData  string  false  "Phone number"
// @Param        hireDate      formData  string  false  "Hire date (yyyy-mm-dd)"
// @Param        uploadImage   formData  file    false  "Profile image"
// @Success      201           {object}  employeeListResponse
// @Failure      400           {object}  map[string]string
// @Failure      401           {object}  map[string]string
// @Router       /admin/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	input, err := employeeInput(c)
	if err != nil {
		return err
	}

	employees, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEmployeeListResponse(employees))
}

// Update replaces an employee account and returns the refreshed list.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      int     true   "Employee ID"
// @Param        fullName     formData  string  true   "Full name"
// @Param        userRole     formData  string  true   "Role: admin, manager, or cashier"
// @Param        currentRole  formData  string  false  "Role before the edit"
// @Success      200          {object}  employeeListResponse
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Router       /admin/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, err := employeeInput(c)
	if err != nil {
		return err
	}

	employees, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Delete soft-deletes an employee account and returns the refreshed list.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Employee ID"
// @Success      200 {object}  employeeListResponse
// @Failure      401 {object}  map[string]string
// @Router       /admin/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	employees, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// employeeInput reads the multipart form fields and the optional image.
func employeeInput(c echo.Context) (ports.EmployeeInput, error) {
	input := ports.EmployeeInput{
		FullName:    c.FormValue("fullName"),
		Username:    c.FormValue("username"),
		Password:    c.FormValue("password"),
		Email:       c.FormValue("emailAddress"),
		Phone:       c.FormValue("phoneNumber"),
		HireDate:    c.FormValue("hireDate"),
		Role:        c.FormValue("userRole"),
		CurrentRole: c.FormValue("currentRole"),
	}

	fh, err := c.FormFile("uploadImage")
	if err != nil {
		// FormFile errors both when the part is missing and when the
		// request is plain urlencoded; either way there is no image.
		return input, nil
	}
	if fh.Size > maxUploadBytes {
		return input, echo.NewHTTPError(http.StatusBadRequest, "image exceeds the size limit")
	}

	f, err := fh.Open()
	if err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return input, echo.NewHTTPError(http.StatusBadRequest, "invalid upload")
	}

	input.Image = &ports.FileUpload{Filename: fh.Filename, Content: content}
	return input, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}
	return id, nil
}
