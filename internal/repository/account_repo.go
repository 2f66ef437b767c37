package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	GetByID(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]domain.Account, error)
	Count(ctx context.Context) (int64, error)
}

type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func (r *PgAccountRepository) Create(ctx context.Context, account domain.Account) error {
	const query = `
		INSERT INTO accounts (account_id, nickname)
		VALUES ($1, $2)
	`
	_, err := r.pool.Exec(ctx, query, account.AccountID, account.Nickname)
	return err
}

func (r *PgAccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `
		SELECT account_id, nickname
		FROM accounts
		WHERE account_id = $1
	`
	var account domain.Account
	err := r.pool.QueryRow(ctx, query, id).Scan(&account.AccountID, &account.Nickname)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Account{}, err
	}
	return account, err
}

func (r *PgAccountRepository) List(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	const query = `
		SELECT account_id, nickname
		FROM accounts
		ORDER BY created_at DESC, account_id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, limit)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.AccountID, &account.Nickname); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *PgAccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&n)
	return n, err
}
