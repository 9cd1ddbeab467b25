package users

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hemanthreddy-komma/Legal-IT/internal/domain"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already in use")
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// NormalizeEmail lower-cases and trims an email address. Uniqueness is
// enforced on the normalized form, so "A@x.com" and "a@x.com" collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Repository) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	u := &domain.User{Name: name, Email: NormalizeEmail(email), PasswordHash: passwordHash}
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.Pool.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, created_at
         FROM users
         WHERE email = $1`,
		NormalizeEmail(email),
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
