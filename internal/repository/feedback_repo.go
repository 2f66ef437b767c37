package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"admin-console/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.Feedback) error
	List(ctx context.Context, limit, offset int) ([]domain.Feedback, error)
	Count(ctx context.Context) (int64, error)
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) Create(ctx context.Context, feedback domain.Feedback) error {
	const query = `
		INSERT INTO feedback (id, account_id, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.AccountID,
		feedback.Message,
		feedback.CreatedAt,
	)
	return err
}

// List devuelve el feedback mas reciente primero.
func (r *PgFeedbackRepository) List(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	const query = `
		SELECT id, account_id, message, created_at
		FROM feedback
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0, limit)
	for rows.Next() {
		var fb domain.Feedback
		err = rows.Scan(
			&fb.ID,
			&fb.AccountID,
			&fb.Message,
			&fb.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, fb)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *PgFeedbackRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM feedback`).Scan(&n)
	return n, err
}
