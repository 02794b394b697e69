package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/homeseek/backend/internal/models"
	"github.com/homeseek/backend/internal/utils"
)

// Postgres unique_violation.
const pgUniqueViolation = "23505"

type UserRepository interface {
	// Create inserts the user row. Duplicate email surfaces as
	// utils.ErrEmailExists, detected from the uniqueness violation
	// rather than a racy pre-check.
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (user_id, full_name, email_address, address, password)
        VALUES ($1,$2,$3,$4,$5)
    `,
		u.ID,
		u.FullName,
		u.Email,
		u.Address,
		u.PasswordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return utils.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT user_id, full_name, email_address, address, password
        FROM users WHERE email_address=$1
    `, email)

	var u models.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Address, &u.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
