package usecase

import (
	"context"

	"helperhub/internal/domain/account"
	"helperhub/internal/infra"
	"helperhub/internal/pkg/errs"
	"helperhub/internal/pkg/password"
	"helperhub/internal/pkg/patch"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ProfilePatch updates the base fields any account owns. Helper
// attributes go through the helper profile operations instead.
type ProfilePatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	City     *string
	State    *string
	Password *string
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, p ProfilePatch) (*readmodel.AccountRM, error)
}

type profileUseCaseImpl struct {
	accountRepo AccountRepository
}

func NewProfileUseCase(accountRepo AccountRepository) ProfileUseCase {
	return &profileUseCaseImpl{accountRepo: accountRepo}
}

func (u *profileUseCaseImpl) GetProfile(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error) {
	entity, err := u.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return AccountToRM(entity), nil
}

func (u *profileUseCaseImpl) UpdateProfile(ctx context.Context, accountID uuid.UUID, p ProfilePatch) (*readmodel.AccountRM, error) {
	entity, err := u.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	email := entity.Email()
	if p.Email != nil {
		e, err := account.NewEmail(*p.Email)
		if err != nil {
			return nil, ErrValidation
		}
		email = e
	}
	phone := entity.Phone()
	if p.Phone != nil {
		ph, err := account.NewPhone(*p.Phone)
		if err != nil {
			return nil, ErrValidation
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

	if p.Password != nil {
		pass, err := account.NewPassword(*p.Password)
		if err != nil {
			return nil, ErrValidation
		}
		hash, err := password.HashPassword(pass.Value())
		if err != nil {
			return nil, ErrValidation
		}
		entity.ChangePassword(hash)
	}

	if err := u.accountRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return AccountToRM(entity), nil
}

func (u *profileUseCaseImpl) findAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	entity, err := u.accountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity == nil {
		return nil, ErrAccountNotFound
	}
	return entity, nil
}
