package handler

import (
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

type employeeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	HireDate string `json:"hire_date"`
	ImageURL string `json:"image_url"`
}

type employeeListResponse struct {
	Employees []employeeResponse `json:"employees"`
}

func toEmployeeListResponse(employees []domain.Employee) employeeListResponse {
	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeResponse{
			ID:       e.ID,
			Name:     e.Name,
			Username: e.Username,
			Email:    e.Email,
			Phone:    e.Phone,
			Role:     string(e.Role),
			Status:   string(e.Status),
			HireDate: e.HireDate,
			ImageURL: e.ImageURL,
		})
	}
	return employeeListResponse{Employees: out}
}
