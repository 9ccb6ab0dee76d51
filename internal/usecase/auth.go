package usecase

import (
	"context"
	"errors"

	"helperhub/internal/domain/account"
	"helperhub/internal/infra"
	"helperhub/internal/pkg/errs"
	"helperhub/internal/pkg/jwt"
	"helperhub/internal/pkg/password"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("account with this email already exists")
	ErrDuplicatePhone     = errors.New("account with this phone number already exists")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
	ErrValidation         = errors.New("validation failed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	FindByPhone(ctx context.Context, phone string) (*account.Account, error)
	SearchHelpers(ctx context.Context, filter HelperFilter) ([]*readmodel.HelperPublicRM, error)
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	Address  string
	City     string
	State    string

	// Helper-only attributes; ignored for customer registrations.
	Services        []string
	Experience      int
	Bio             string
	HourlyRate      float64
	AreaOfOperation []string
	AadhaarNumber   string
	IDProofURL      string
}

type AuthResult struct {
	Account *readmodel.AccountRM
	Token   string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, credentials account.Credentials) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error)
}

type authUseCaseImpl struct {
	accountRepo AccountRepository
	jwtService  *jwt.Service
}

func NewAuthUseCase(accountRepo AccountRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	entity, err := a.buildAccount(params)
	if err != nil {
		return nil, err
	}

	if err := a.checkDuplicates(ctx, entity); err != nil {
		return nil, err
	}

	if err := a.accountRepo.Create(ctx, entity); err != nil {
		// The unique constraints back up the pre-checks against races.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.issueToken(ctx, entity.ID(), entity.Role())
}

// buildAccount returns ErrValidation bare so handlers can match it
// with errors.Is; errs.Mark is reserved for 500-class store failures.
func (a *authUseCaseImpl) buildAccount(params RegisterParams) (*account.Account, error) {
	email, err := account.NewEmail(params.Email)
	if err != nil {
		return nil, ErrValidation
	}
	phone, err := account.NewPhone(params.Phone)
	if err != nil {
		return nil, ErrValidation
	}
	pass, err := account.NewPassword(params.Password)
	if err != nil {
		return nil, ErrValidation
	}
	role, err := account.NewRole(params.Role)
	if err != nil {
		return nil, ErrValidation
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, ErrValidation
	}

	if role == account.RoleHelper {
		profile := account.HelperProfile{
			Bio:             params.Bio,
			Services:        params.Services,
			Experience:      params.Experience,
			HourlyRate:      params.HourlyRate,
			AreaOfOperation: params.AreaOfOperation,
			AadhaarNumber:   params.AadhaarNumber,
			IDProofURL:      params.IDProofURL,
		}
		return account.NewHelperAccount(params.Name, email, phone, hash, params.Address, params.City, params.State, profile), nil
	}

	return account.NewAccount(params.Name, email, phone, hash, role, params.Address, params.City, params.State), nil
}

func (a *authUseCaseImpl) checkDuplicates(ctx context.Context, entity *account.Account) error {
	existing, err := a.accountRepo.FindByEmail(ctx, entity.Email().Value())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return ErrDuplicateEmail
	}

	existing, err = a.accountRepo.FindByPhone(ctx, entity.Phone().Value())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return ErrDuplicatePhone
	}

	return nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials account.Credentials) (*AuthResult, error) {
	entity, err := a.accountRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Unknown email and wrong password read the same to the caller.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity == nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(entity.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.issueToken(ctx, entity.ID(), entity.Role())
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error) {
	entity, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity == nil {
		return nil, ErrAccountNotFound
	}
	return AccountToRM(entity), nil
}

func (a *authUseCaseImpl) issueToken(ctx context.Context, accountID uuid.UUID, role account.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(accountID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	rm, err := a.GetCurrentUser(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Account: rm, Token: token}, nil
}

// AccountToRM projects the full entity into its owner-facing view.
func AccountToRM(a *account.Account) *readmodel.AccountRM {
	rm := &readmodel.AccountRM{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email().Value(),
		Phone:     a.Phone().Value(),
		Role:      a.Role().String(),
		Address:   a.Address(),
		City:      a.City(),
		State:     a.State(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}

	if a.IsHelper() {
		p := a.HelperProfile()
		rm.ProfilePicture = p.ProfilePicture
		rm.Bio = p.Bio
		rm.Services = p.Services
		rm.Experience = p.Experience
		rm.HourlyRate = p.HourlyRate
		rm.AverageRating = p.AverageRating
		rm.NumReviews = p.NumReviews
		rm.AreaOfOperation = p.AreaOfOperation
		rm.Availability = p.Availability
		rm.IsProfileComplete = a.IsProfileComplete()
		rm.AadhaarNumber = p.AadhaarNumber
		rm.IDProofURL = p.IDProofURL
		rm.IsIdentityVerified = p.IsIdentityVerified
	}

	return rm
}
