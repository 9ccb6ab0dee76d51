package request

import (
	"helperhub/internal/domain/account"
	"helperhub/internal/usecase"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`

	// Helper-only attributes; ignored when role is customer.
	Services        []string `json:"services,omitempty"`
	Experience      int      `json:"experience,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	AreaOfOperation []string `json:"areaOfOperation,omitempty"`
	AadhaarNumber   string   `json:"aadhaarNumber,omitempty"`
	IDProofURL      string   `json:"idProofUrl,omitempty"`
}

func (r *RegisterRequest) ToParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		Phone:           r.Phone,
		Role:            r.Role,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Services:        r.Services,
		Experience:      r.Experience,
		Bio:             r.Bio,
		HourlyRate:      r.HourlyRate,
		AreaOfOperation: r.AreaOfOperation,
		AadhaarNumber:   r.AadhaarNumber,
		IDProofURL:      r.IDProofURL,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (account.Credentials, error) {
	return account.NewCredentials(r.Email, r.Password)
}
