package repository

import (
	"context"
	"errors"

	"blackeagles/internal/model"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository interface {
	Create(ctx context.Context, params model.SubmitInquiryParams) (*model.Inquiry, error)
	// List returns newest first; an empty type lists both kinds.
	List(ctx context.Context, inquiryType model.InquiryType) ([]*model.Inquiry, error)
	Recent(ctx context.Context, limit int) ([]*model.Inquiry, error)
	CountUnread(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id int) (*model.Inquiry, error)
	MarkRead(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type InquiryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &InquiryRepositoryImpl{
		pool: pool,
	}
}

const inquiryColumns = `id, name, email, message, type, is_read, created_at`

func scanInquiry(row pgx.Row) (*model.Inquiry, error) {
	var (
		inquiry model.Inquiry
		typ     string
	)
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Message,
		&typ,
		&inquiry.IsRead,
		&inquiry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inquiry.Type = model.InquiryType(typ)
	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, params model.SubmitInquiryParams) (*model.Inquiry, error) {
	query := `
		INSERT INTO inquiries (name, email, message, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + inquiryColumns

	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Message, string(params.Type),
	))
	if err != nil {
		return nil, apperrors.NewPersistenceError("create inquiry", err)
	}
	return inquiry, nil
}

func (r *InquiryRepositoryImpl) List(ctx context.Context, inquiryType model.InquiryType) ([]*model.Inquiry, error) {
	if inquiryType == "" {
		return r.query(ctx, "list inquiries",
			`SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC, id DESC`)
	}
	return r.query(ctx, "list inquiries",
		`SELECT `+inquiryColumns+` FROM inquiries WHERE type = $1 ORDER BY created_at DESC, id DESC`,
		string(inquiryType))
}

func (r *InquiryRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.Inquiry, error) {
	return r.query(ctx, "recent inquiries",
		`SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (r *InquiryRepositoryImpl) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries WHERE is_read = FALSE`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewPersistenceError("count unread inquiries", err)
	}
	return count, nil
}

func (r *InquiryRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Inquiry, error) {
	inquiry, err := scanInquiry(r.pool.QueryRow(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, apperrors.NewPersistenceError("find inquiry", err)
	}
	return inquiry, nil
}

func (r *InquiryRepositoryImpl) MarkRead(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrInquiryNotFound, "mark inquiry read",
		`UPDATE inquiries SET is_read = TRUE WHERE id = $1`, id)
}

func (r *InquiryRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrInquiryNotFound, "delete inquiry",
		`DELETE FROM inquiries WHERE id = $1`, id)
}

func (r *InquiryRepositoryImpl) query(ctx context.Context, op, query string, args ...any) ([]*model.Inquiry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	defer rows.Close()

	inquiries := make([]*model.Inquiry, 0)
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError(op, err)
		}
		inquiries = append(inquiries, inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return inquiries, nil
}
