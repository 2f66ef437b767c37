package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/domain"
)

// AdminRepository define el contrato de persistencia para operadores.
type AdminRepository interface {
	Create(ctx context.Context, admin domain.Admin) error
	GetByID(ctx context.Context, id string) (domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (domain.Admin, error)
}

// PgAdminRepository implementa AdminRepository usando pgxpool.
type PgAdminRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepository(pool *pgxpool.Pool) *PgAdminRepository {
	return &PgAdminRepository{pool: pool}
}

func (r *PgAdminRepository) Create(ctx context.Context, admin domain.Admin) error {
	const query = `
		INSERT INTO admins (id, username, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Username,
		admin.DisplayName,
		admin.PasswordHash,
		admin.CreatedAt,
	)
	return err
}

func (r *PgAdminRepository) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	const query = `
		SELECT id, username, display_name, password_hash, created_at
		FROM admins
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *PgAdminRepository) GetByUsername(ctx context.Context, username string) (domain.Admin, error) {
	const query = `
		SELECT id, username, display_name, password_hash, created_at
		FROM admins
		WHERE username = $1
	`
	return r.scanOne(ctx, query, username)
}

func (r *PgAdminRepository) scanOne(ctx context.Context, query string, arg any) (domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID,
		&a.Username,
		&a.DisplayName,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Admin{}, err
	}
	return a, err
}
