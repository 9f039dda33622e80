package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blackeagles/internal/model"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository is the schedule store contract shared by the web
// database and the standalone manager's SQLite file.
type ScheduleRepository interface {
	Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error)
	FindByID(ctx context.Context, id int) (*model.ScheduleEntry, error)
	Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter model.ScheduleFilter, ref time.Time) ([]*model.ScheduleEntry, error)
	Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error)
	Stats(ctx context.Context, ref time.Time) (*model.ScheduleStats, error)
}

type ScheduleRepositoryImpl struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepositoryImpl{
		pool: pool,
		now:  time.Now,
	}
}

const scheduleColumns = `id, title, location, event_date, description, created_at, updated_at`

func scanSchedule(row pgx.Row) (*model.ScheduleEntry, error) {
	var (
		s    model.ScheduleEntry
		date time.Time
	)
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Location,
		&date,
		&s.Description,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.EventDate = model.DateOf(date)
	return &s, nil
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error) {
	if err := params.ValidateCreate(); err != nil {
		return nil, err
	}
	date, _ := model.ParseEventDate(params.EventDate)
	now := r.now().UTC().Truncate(time.Microsecond)

	query := `
		INSERT INTO schedules (title, location, event_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + scheduleColumns

	s, err := scanSchedule(r.pool.QueryRow(ctx, query,
		params.Title, params.Location, date, params.Description, now,
	))
	if err != nil {
		return nil, apperrors.NewPersistenceError("create schedule", err)
	}
	return s, nil
}

func (r *ScheduleRepositoryImpl) FindByID(ctx context.Context, id int) (*model.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	s, err := scanSchedule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.NewPersistenceError("find schedule", err)
	}
	return s, nil
}

// Update locks the row, then validates, so a missing id wins over bad input.
func (r *ScheduleRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("update schedule", err)
	}
	defer tx.Rollback(ctx)

	var exists int
	err = tx.QueryRow(ctx, `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.NewPersistenceError("update schedule", err)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}

	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, strings.TrimSpace(*params.Title))
		argPos++
	}
	if params.Location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argPos))
		args = append(args, strings.TrimSpace(*params.Location))
		argPos++
	}
	if params.EventDate != nil {
		date, _ := model.ParseEventDate(*params.EventDate)
		sets = append(sets, fmt.Sprintf("event_date = $%d", argPos))
		args = append(args, date)
		argPos++
	}
	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, strings.TrimSpace(*params.Description))
		argPos++
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, r.now().UTC().Truncate(time.Microsecond))
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE schedules
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, scheduleColumns)

	s, err := scanSchedule(tx.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, apperrors.NewPersistenceError("update schedule", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.NewPersistenceError("update schedule", err)
	}
	return s, nil
}

func (r *ScheduleRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return apperrors.NewPersistenceError("delete schedule", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepositoryImpl) List(ctx context.Context, filter model.ScheduleFilter, ref time.Time) ([]*model.ScheduleEntry, error) {
	w := filter.Window(ref)
	where, args := WindowClause(w, "$")
	query := `SELECT ` + scheduleColumns + ` FROM schedules` + where + OrderClause(w)

	return r.query(ctx, "list schedules", query, args...)
}

func (r *ScheduleRepositoryImpl) Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE title ILIKE $1 OR location ILIKE $1 OR description ILIKE $1
		ORDER BY event_date DESC, id DESC
	`
	return r.query(ctx, "search schedules", query, LikePattern(keyword))
}

func (r *ScheduleRepositoryImpl) Stats(ctx context.Context, ref time.Time) (*model.ScheduleStats, error) {
	today := model.CivilDate(ref)
	week := model.CivilDate(ref.AddDate(0, 0, model.WeekWindowDays))
	month := model.CivilDate(ref.AddDate(0, 0, model.MonthWindowDays))

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE event_date >= $1),
			COUNT(*) FILTER (WHERE event_date < $1),
			COUNT(*) FILTER (WHERE event_date >= $1 AND event_date <= $2),
			COUNT(*) FILTER (WHERE event_date >= $1 AND event_date <= $3)
		FROM schedules
	`

	var stats model.ScheduleStats
	err := r.pool.QueryRow(ctx, query, today, week, month).Scan(
		&stats.Total,
		&stats.Upcoming,
		&stats.Past,
		&stats.Week,
		&stats.Month,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("schedule stats", err)
	}
	return &stats, nil
}

func (r *ScheduleRepositoryImpl) query(ctx context.Context, op, query string, args ...interface{}) ([]*model.ScheduleEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	defer rows.Close()

	schedules := make([]*model.ScheduleEntry, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError(op, err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return schedules, nil
}
