package usecase

import (
	"context"

	"helperhub/internal/domain/account"
	"helperhub/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, account.Role, error)
}

type tokenValidatorImpl struct {
	jwtService  *jwt.Service
	accountRepo AccountRepository
}

func NewTokenValidator(jwtService *jwt.Service, accountRepo AccountRepository) TokenValidator {
	return &tokenValidatorImpl{
		jwtService:  jwtService,
		accountRepo: accountRepo,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, account.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role := account.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	// A token is only as good as the account behind it; a deleted
	// account must not keep acting through an unexpired token.
	entity, err := t.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil || entity == nil {
		return uuid.Nil, "", ErrAccountNotFound
	}

	return claims.AccountID, role, nil
}
