package repository

import (
	"context"
	"errors"
	"time"

	"blackeagles/internal/model"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NoticeRepository interface {
	Create(ctx context.Context, params model.NoticeParams) (*model.Notice, error)
	List(ctx context.Context) ([]*model.Notice, error)
	FindByID(ctx context.Context, id int) (*model.Notice, error)
	Update(ctx context.Context, id int, params model.NoticeParams) (*model.Notice, error)
	Delete(ctx context.Context, id int) error
}

type NoticeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &NoticeRepositoryImpl{
		pool: pool,
	}
}

func scanNotice(row pgx.Row) (*model.Notice, error) {
	var notice model.Notice
	err := row.Scan(
		&notice.ID,
		&notice.Title,
		&notice.Content,
		&notice.Author,
		&notice.CreatedAt,
		&notice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepositoryImpl) Create(ctx context.Context, params model.NoticeParams) (*model.Notice, error) {
	query := `
		INSERT INTO notices (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author, created_at, updated_at
	`

	notice, err := scanNotice(r.pool.QueryRow(ctx, query, params.Title, params.Content, params.Author))
	if err != nil {
		return nil, apperrors.NewPersistenceError("create notice", err)
	}
	return notice, nil
}

func (r *NoticeRepositoryImpl) List(ctx context.Context) ([]*model.Notice, error) {
	query := `
		SELECT id, title, content, author, created_at, updated_at
		FROM notices
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewPersistenceError("list notices", err)
	}
	defer rows.Close()

	notices := make([]*model.Notice, 0)
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError("list notices", err)
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("list notices", err)
	}

	return notices, nil
}

func (r *NoticeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Notice, error) {
	query := `
		SELECT id, title, content, author, created_at, updated_at
		FROM notices
		WHERE id = $1
	`

	notice, err := scanNotice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, apperrors.NewPersistenceError("find notice", err)
	}
	return notice, nil
}

// Update keeps the original author.
func (r *NoticeRepositoryImpl) Update(ctx context.Context, id int, params model.NoticeParams) (*model.Notice, error) {
	query := `
		UPDATE notices
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, title, content, author, created_at, updated_at
	`

	notice, err := scanNotice(r.pool.QueryRow(ctx, query, params.Title, params.Content, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, apperrors.NewPersistenceError("update notice", err)
	}
	return notice, nil
}

func (r *NoticeRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrNoticeNotFound, "delete notice",
		`DELETE FROM notices WHERE id = $1`, id)
}
