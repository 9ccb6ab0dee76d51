package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AccountRM is the account's own view of itself. Helper fields are
// zero-valued for customers and omitted from JSON.
type AccountRM struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Role    string    `json:"role"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	State   string    `json:"state"`

	ProfilePicture     string   `json:"profilePicture,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Services           []string `json:"services,omitempty"`
	Experience         int      `json:"experience,omitempty"`
	HourlyRate         float64  `json:"hourlyRate,omitempty"`
	AverageRating      float64  `json:"averageRating,omitempty"`
	NumReviews         int      `json:"numReviews,omitempty"`
	AreaOfOperation    []string `json:"areaOfOperation,omitempty"`
	Availability       string   `json:"availability,omitempty"`
	IsProfileComplete  bool     `json:"isProfileComplete"`
	AadhaarNumber      string   `json:"aadhaarNumber,omitempty"`
	IDProofURL         string   `json:"idProofUrl,omitempty"`
	IsIdentityVerified bool     `json:"isIdentityVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HelperPublicRM is the directory view of a helper; credentials and
// verification documents never appear here, only their flags.
type HelperPublicRM struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	ProfilePicture     string    `json:"profilePicture"`
	Bio                string    `json:"bio"`
	Services           []string  `json:"services"`
	Experience         int       `json:"experience"`
	HourlyRate         float64   `json:"hourlyRate"`
	AverageRating      float64   `json:"averageRating"`
	NumReviews         int       `json:"numReviews"`
	AreaOfOperation    []string  `json:"areaOfOperation"`
	Availability       string    `json:"availability"`
	IsProfileComplete  bool      `json:"isProfileComplete"`
	IsIdentityVerified bool      `json:"isIdentityVerified"`
}
