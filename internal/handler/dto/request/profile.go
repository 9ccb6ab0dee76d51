package request

import (
	"helperhub/internal/usecase"
)

// UpdateProfileRequest carries a partial update: absent fields keep their
// stored values.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (r *UpdateProfileRequest) ToPatch() usecase.ProfilePatch {
	return usecase.ProfilePatch{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Password: r.Password,
	}
}

type UpdateHelperProfileRequest struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone           *string  `json:"phone,omitempty"`
	Address         *string  `json:"address,omitempty"`
	City            *string  `json:"city,omitempty"`
	State           *string  `json:"state,omitempty"`
	ProfilePicture  *string  `json:"profilePicture,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	Services        []string `json:"services,omitempty"`
	Experience      *int     `json:"experience,omitempty"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"`
	AreaOfOperation []string `json:"areaOfOperation,omitempty"`
	Availability    *string  `json:"availability,omitempty"`
	AadhaarNumber   *string  `json:"aadhaarNumber,omitempty"`
	IDProofURL      *string  `json:"idProofUrl,omitempty"`
	Password        *string  `json:"password,omitempty" binding:"omitempty,min=8"`
}

func (r *UpdateHelperProfileRequest) ToPatch() usecase.HelperProfilePatch {
	return usecase.HelperProfilePatch{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		ProfilePicture:  r.ProfilePicture,
		Bio:             r.Bio,
		Services:        r.Services,
		Experience:      r.Experience,
		HourlyRate:      r.HourlyRate,
		AreaOfOperation: r.AreaOfOperation,
		Availability:    r.Availability,
		AadhaarNumber:   r.AadhaarNumber,
		IDProofURL:      r.IDProofURL,
		Password:        r.Password,
	}
}
