package usecase

import (
	"context"
	"strings"

	"helperhub/internal/domain/account"
	"helperhub/internal/infra"
	"helperhub/internal/pkg/errs"
	"helperhub/internal/pkg/password"
	"helperhub/internal/pkg/patch"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// HelperFilter narrows the public helper directory. Zero values mean
// "no constraint".
type HelperFilter struct {
	Keyword         string
	City            string
	Service         string
	MinRating       float64
	MinExperience   int
	AreaOfOperation string
	Availability    string
}

// HelperProfilePatch is an explicit partial update: nil means "leave the
// stored value alone". Merging happens in exactly one place.
type HelperProfilePatch struct {
	Name            *string
	Email           *string
	Phone           *string
	Address         *string
	City            *string
	State           *string
	ProfilePicture  *string
	Bio             *string
	Services        []string
	Experience      *int
	HourlyRate      *float64
	AreaOfOperation []string
	Availability    *string
	AadhaarNumber   *string
	IDProofURL      *string
	Password        *string
}

type HelperUseCase interface {
	GetProfile(ctx context.Context, helperID uuid.UUID) (*readmodel.AccountRM, error)
	UpdateProfile(ctx context.Context, helperID uuid.UUID, p HelperProfilePatch) (*readmodel.AccountRM, error)
	SearchHelpers(ctx context.Context, filter HelperFilter) ([]*readmodel.HelperPublicRM, error)
	GetHelperByID(ctx context.Context, id uuid.UUID) (*readmodel.HelperPublicRM, error)
}

type helperUseCaseImpl struct {
	accountRepo AccountRepository
}

func NewHelperUseCase(accountRepo AccountRepository) HelperUseCase {
	return &helperUseCaseImpl{accountRepo: accountRepo}
}

func (u *helperUseCaseImpl) GetProfile(ctx context.Context, helperID uuid.UUID) (*readmodel.AccountRM, error) {
	entity, err := u.findHelper(ctx, helperID)
	if err != nil {
		return nil, err
	}
	return AccountToRM(entity), nil
}

func (u *helperUseCaseImpl) UpdateProfile(ctx context.Context, helperID uuid.UUID, p HelperProfilePatch) (*readmodel.AccountRM, error) {
	entity, err := u.findHelper(ctx, helperID)
	if err != nil {
		return nil, err
	}

	if err := applyHelperPatch(entity, p); err != nil {
		return nil, err
	}

	if err := u.accountRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return AccountToRM(entity), nil
}

// applyHelperPatch is the single merge point for helper profile edits.
func applyHelperPatch(entity *account.Account, p HelperProfilePatch) error {
	email := entity.Email()
	if p.Email != nil {
		e, err := account.NewEmail(*p.Email)
		if err != nil {
			return ErrValidation
		}
		email = e
	}
	phone := entity.Phone()
	if p.Phone != nil {
		ph, err := account.NewPhone(*p.Phone)
		if err != nil {
			return ErrValidation
		}
		phone = ph
	}

	entity.UpdateContact(
		patch.Coalesce(p.Name, entity.Name()),
		email,
		phone,
		patch.Coalesce(p.Address, entity.Address()),
		patch.Coalesce(p.City, entity.City()),
		patch.Coalesce(p.State, entity.State()),
	)

	current := entity.HelperProfile()
	profile := account.HelperProfile{
		ProfilePicture:  patch.Coalesce(p.ProfilePicture, current.ProfilePicture),
		Bio:             patch.Coalesce(p.Bio, current.Bio),
		Services:        cleanList(p.Services, current.Services),
		Experience:      patch.Coalesce(p.Experience, current.Experience),
		HourlyRate:      patch.Coalesce(p.HourlyRate, current.HourlyRate),
		AreaOfOperation: cleanList(p.AreaOfOperation, current.AreaOfOperation),
		Availability:    patch.Coalesce(p.Availability, current.Availability),
		AadhaarNumber:   patch.Coalesce(p.AadhaarNumber, current.AadhaarNumber),
		IDProofURL:      patch.Coalesce(p.IDProofURL, current.IDProofURL),
	}
	entity.UpdateHelperProfile(profile)

	if p.Password != nil {
		pass, err := account.NewPassword(*p.Password)
		if err != nil {
			return ErrValidation
		}
		hash, err := password.HashPassword(pass.Value())
		if err != nil {
			return ErrValidation
		}
		entity.ChangePassword(hash)
	}

	return nil
}

func cleanList(next, current []string) []string {
	if next == nil {
		return current
	}
	out := make([]string, 0, len(next))
	for _, s := range next {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (u *helperUseCaseImpl) SearchHelpers(ctx context.Context, filter HelperFilter) ([]*readmodel.HelperPublicRM, error) {
	helpers, err := u.accountRepo.SearchHelpers(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return helpers, nil
}

func (u *helperUseCaseImpl) GetHelperByID(ctx context.Context, id uuid.UUID) (*readmodel.HelperPublicRM, error) {
	entity, err := u.findHelper(ctx, id)
	if err != nil {
		return nil, err
	}
	rm := AccountToRM(entity)
	return &readmodel.HelperPublicRM{
		ID:                 rm.ID,
		Name:               rm.Name,
		Email:              rm.Email,
		Phone:              rm.Phone,
		City:               rm.City,
		State:              rm.State,
		ProfilePicture:     rm.ProfilePicture,
		Bio:                rm.Bio,
		Services:           rm.Services,
		Experience:         rm.Experience,
		HourlyRate:         rm.HourlyRate,
		AverageRating:      rm.AverageRating,
		NumReviews:         rm.NumReviews,
		AreaOfOperation:    rm.AreaOfOperation,
		Availability:       rm.Availability,
		IsProfileComplete:  rm.IsProfileComplete,
		IsIdentityVerified: rm.IsIdentityVerified,
	}, nil
}

func (u *helperUseCaseImpl) findHelper(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	entity, err := u.accountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHelperNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity == nil || !entity.IsHelper() {
		return nil, ErrHelperNotFound
	}
	return entity, nil
}
