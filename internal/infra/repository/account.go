package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"helperhub/internal/domain/account"
	"helperhub/internal/infra"
	"helperhub/internal/usecase"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `
	id, name, email, phone, password_hash, role, address, city, state,
	profile_picture, bio, services, experience, hourly_rate,
	average_rating, num_reviews, area_of_operation, availability,
	aadhaar_number, id_proof_url, is_identity_verified,
	created_at, updated_at`

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	p := a.HelperProfile()
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (
			id, name, email, phone, password_hash, role, address, city, state,
			profile_picture, bio, services, experience, hourly_rate,
			average_rating, num_reviews, area_of_operation, availability,
			aadhaar_number, id_proof_url, is_identity_verified
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		a.ID(), a.Name(), a.Email().Value(), a.Phone().Value(), a.PasswordHash(),
		a.Role().String(), a.Address(), a.City(), a.State(),
		p.ProfilePicture, p.Bio, p.Services, p.Experience, p.HourlyRate,
		p.AverageRating, p.NumReviews, p.AreaOfOperation, p.Availability,
		p.AadhaarNumber, p.IDProofURL, p.IsIdentityVerified,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("account already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	p := a.HelperProfile()
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET
			name = $2, email = $3, phone = $4, password_hash = $5,
			address = $6, city = $7, state = $8,
			profile_picture = $9, bio = $10, services = $11, experience = $12,
			hourly_rate = $13, area_of_operation = $14, availability = $15,
			aadhaar_number = $16, id_proof_url = $17,
			updated_at = now()
		WHERE id = $1`,
		a.ID(), a.Name(), a.Email().Value(), a.Phone().Value(), a.PasswordHash(),
		a.Address(), a.City(), a.State(),
		p.ProfilePicture, p.Bio, p.Services, p.Experience,
		p.HourlyRate, p.AreaOfOperation, p.Availability,
		p.AadhaarNumber, p.IDProofURL,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("account already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (*account.Account, error) {
	return r.findOne(ctx, "phone = $1", phone)
}

func (r *AccountRepository) findOne(ctx context.Context, where string, arg any) (*account.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE `+where, arg)

	entity, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return entity, nil
}

func (r *AccountRepository) SearchHelpers(ctx context.Context, filter usecase.HelperFilter) ([]*readmodel.HelperPublicRM, error) {
	query := `SELECT
		id, name, email, phone, city, state, profile_picture, bio,
		services, experience, hourly_rate, average_rating, num_reviews,
		area_of_operation, availability, is_identity_verified
	FROM accounts WHERE role = 'helper'`
	var args []any

	addCond := func(cond string, arg any) {
		args = append(args, arg)
		query += fmt.Sprintf(cond, len(args))
	}

	if filter.Keyword != "" {
		addCond(" AND (name ILIKE $%[1]d OR bio ILIKE $%[1]d)", "%"+filter.Keyword+"%")
	}
	if filter.City != "" {
		addCond(" AND city ILIKE $%d", "%"+filter.City+"%")
	}
	if filter.Service != "" {
		addCond(" AND EXISTS (SELECT 1 FROM unnest(services) s WHERE s ILIKE $%d)", "%"+filter.Service+"%")
	}
	if filter.MinRating > 0 {
		addCond(" AND average_rating >= $%d", filter.MinRating)
	}
	if filter.MinExperience > 0 {
		addCond(" AND experience >= $%d", filter.MinExperience)
	}
	if filter.AreaOfOperation != "" {
		addCond(" AND EXISTS (SELECT 1 FROM unnest(area_of_operation) a WHERE a ILIKE $%d)", "%"+filter.AreaOfOperation+"%")
	}
	if filter.Availability != "" {
		addCond(" AND availability ILIKE $%d", "%"+filter.Availability+"%")
	}

	query += " ORDER BY average_rating DESC, num_reviews DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search helpers", err)
	}
	defer rows.Close()

	var result []*readmodel.HelperPublicRM
	for rows.Next() {
		rm := &readmodel.HelperPublicRM{}
		var bio string
		err := rows.Scan(
			&rm.ID, &rm.Name, &rm.Email, &rm.Phone, &rm.City, &rm.State,
			&rm.ProfilePicture, &bio, &rm.Services, &rm.Experience,
			&rm.HourlyRate, &rm.AverageRating, &rm.NumReviews,
			&rm.AreaOfOperation, &rm.Availability, &rm.IsIdentityVerified,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan helper row", err)
		}
		rm.Bio = bio
		rm.IsProfileComplete = bio != "" && len(rm.Services) > 0
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read helper rows", err)
	}

	return result, nil
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id                       uuid.UUID
		name, emailStr, phoneStr string
		passwordHash, roleStr    string
		address, city, state     string
		profile                  account.HelperProfile
		createdAt, updatedAt     time.Time
	)

	err := row.Scan(
		&id, &name, &emailStr, &phoneStr, &passwordHash, &roleStr,
		&address, &city, &state,
		&profile.ProfilePicture, &profile.Bio, &profile.Services,
		&profile.Experience, &profile.HourlyRate,
		&profile.AverageRating, &profile.NumReviews,
		&profile.AreaOfOperation, &profile.Availability,
		&profile.AadhaarNumber, &profile.IDProofURL, &profile.IsIdentityVerified,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	email, err := account.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}
	phone, err := account.NewPhone(phoneStr)
	if err != nil {
		return nil, err
	}

	return account.ReconstructAccount(
		id, name, email, phone, passwordHash, account.Role(roleStr),
		address, city, state, profile, createdAt, updatedAt,
	), nil
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
