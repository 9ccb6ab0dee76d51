//go:build unit || e2e

package builder

import (
	"time"

	"helperhub/internal/domain/account"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	Address      string
	City         string
	State        string
	Profile      account.HelperProfile
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:           uuid.New(),
		Name:         "Test Customer",
		Email:        "customer@example.com",
		Phone:        "+91 9876543210",
		PasswordHash: "hashed_password",
		Role:         "customer",
		Address:      "42 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
	}
}

func NewHelperBuilder() *AccountBuilder {
	b := NewAccountBuilder()
	b.Name = "Test Helper"
	b.Email = "helper@example.com"
	b.Phone = "+91 9123456780"
	b.Role = "helper"
	b.Profile = account.HelperProfile{
		Bio:             "Experienced electrician",
		Services:        []string{"Electrical", "Plumbing"},
		Experience:      5,
		HourlyRate:      300,
		AreaOfOperation: []string{"Bengaluru"},
		Availability:    "Full-time",
		AadhaarNumber:   "123412341234",
		IDProofURL:      "https://example.com/id-proof.png",
	}
	return b
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	phone, err := account.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	role, err := account.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := b.Profile
	if role == account.RoleHelper {
		if profile.ProfilePicture == "" {
			profile.ProfilePicture = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"
		}
		if profile.Availability == "" {
			profile.Availability = "Full-time"
		}
	}
	return account.ReconstructAccount(
		b.ID, b.Name, email, phone, b.PasswordHash, role,
		b.Address, b.City, b.State, profile, now, now,
	), nil
}

func (b *AccountBuilder) BuildReadModel() *readmodel.HelperPublicRM {
	return &readmodel.HelperPublicRM{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		City:            b.City,
		State:           b.State,
		Bio:             b.Profile.Bio,
		Services:        b.Profile.Services,
		Experience:      b.Profile.Experience,
		HourlyRate:      b.Profile.HourlyRate,
		AreaOfOperation: b.Profile.AreaOfOperation,
		Availability:    b.Profile.Availability,
	}
}

// Fluent builder methods
func (b *AccountBuilder) WithID(id uuid.UUID) *AccountBuilder {
	b.ID = id
	return b
}

func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.Email = email
	return b
}

func (b *AccountBuilder) WithPhone(phone string) *AccountBuilder {
	b.Phone = phone
	return b
}

func (b *AccountBuilder) WithRole(role string) *AccountBuilder {
	b.Role = role
	return b
}

func (b *AccountBuilder) WithAddress(address string) *AccountBuilder {
	b.Address = address
	return b
}

func (b *AccountBuilder) WithProfile(profile account.HelperProfile) *AccountBuilder {
	b.Profile = profile
	return b
}
