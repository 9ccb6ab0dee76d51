package account

import (
	"time"

	"github.com/google/uuid"
)

const defaultProfilePicture = "https://cdn-icons-png.flaticon.com/512/3135/3135715.png"

// HelperProfile carries the searchable attributes of a helper account.
// Meaningful only when the owning account's role is helper; a customer's
// profile stays zero-valued and is never exposed.
type HelperProfile struct {
	ProfilePicture     string
	Bio                string
	Services           []string
	Experience         int
	HourlyRate         float64
	AverageRating      float64
	NumReviews         int
	AreaOfOperation    []string
	Availability       string
	AadhaarNumber      string
	IDProofURL         string
	IsIdentityVerified bool
}

// Complete reports whether the helper has filled the fields customers
// search on.
func (p HelperProfile) Complete() bool {
	return p.Bio != "" && len(p.Services) > 0 && p.Experience >= 0
}

type Account struct {
	id            uuid.UUID
	name          string
	email         Email
	phone         Phone
	passwordHash  string
	role          Role
	address       string
	city          string
	state         string
	helperProfile HelperProfile
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAccount(name string, email Email, phone Phone, passwordHash string, role Role, address, city, state string) *Account {
	return &Account{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		address:      address,
		city:         city,
		state:        state,
	}
}

func NewHelperAccount(name string, email Email, phone Phone, passwordHash string, address, city, state string, profile HelperProfile) *Account {
	a := NewAccount(name, email, phone, passwordHash, RoleHelper, address, city, state)
	if profile.ProfilePicture == "" {
		profile.ProfilePicture = defaultProfilePicture
	}
	if profile.Availability == "" {
		profile.Availability = "Full-time"
	}
	profile.IsIdentityVerified = false
	a.helperProfile = profile
	return a
}

func ReconstructAccount(
	id uuid.UUID,
	name string,
	email Email,
	phone Phone,
	passwordHash string,
	role Role,
	address, city, state string,
	profile HelperProfile,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		passwordHash:  passwordHash,
		role:          role,
		address:       address,
		city:          city,
		state:         state,
		helperProfile: profile,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *Account) ID() uuid.UUID                { return a.id }
func (a *Account) Name() string                 { return a.name }
func (a *Account) Email() Email                 { return a.email }
func (a *Account) Phone() Phone                 { return a.phone }
func (a *Account) PasswordHash() string         { return a.passwordHash }
func (a *Account) Role() Role                   { return a.role }
func (a *Account) Address() string              { return a.address }
func (a *Account) City() string                 { return a.city }
func (a *Account) State() string                { return a.state }
func (a *Account) HelperProfile() HelperProfile { return a.helperProfile }
func (a *Account) CreatedAt() time.Time         { return a.createdAt }
func (a *Account) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Account) IsHelper() bool {
	return a.role == RoleHelper
}

// IsProfileComplete is derived, never stored independently of the fields
// it summarizes.
func (a *Account) IsProfileComplete() bool {
	return a.IsHelper() && a.helperProfile.Complete()
}

func (a *Account) UpdateContact(name string, email Email, phone Phone, address, city, state string) {
	a.name = name
	a.email = email
	a.phone = phone
	a.address = address
	a.city = city
	a.state = state
}

func (a *Account) UpdateHelperProfile(profile HelperProfile) {
	// Verification flags are owned by the verification process, not
	// by profile edits.
	profile.IsIdentityVerified = a.helperProfile.IsIdentityVerified
	profile.AverageRating = a.helperProfile.AverageRating
	profile.NumReviews = a.helperProfile.NumReviews
	a.helperProfile = profile
}

func (a *Account) ChangePassword(hash string) {
	a.passwordHash = hash
}
