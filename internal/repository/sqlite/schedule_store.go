// Package sqlite holds the standalone schedule manager's store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blackeagles/internal/database"
	"blackeagles/internal/model"
	"blackeagles/internal/repository"
	apperrors "blackeagles/pkg/app_errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS schedules (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	event_date TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedules_event_date ON schedules (event_date);
`

// Migrate creates the schedules table if it is missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return apperrors.NewPersistenceError("migrate schedules", err)
	}
	return nil
}

const columns = `id, title, location, event_date, description, created_at, updated_at`

// ScheduleStore implements repository.ScheduleRepository over SQLite.
// Dates are ISO text so range predicates compare lexically.
type ScheduleStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ repository.ScheduleRepository = (*ScheduleStore)(nil)

func NewScheduleStore(db *sql.DB) *ScheduleStore {
	return &ScheduleStore{db: db, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *ScheduleStore) WithClock(now func() time.Time) *ScheduleStore {
	s.now = now
	return s
}

func (s *ScheduleStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.ScheduleEntry, error) {
	var (
		e                model.ScheduleEntry
		created, updated string
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Location, &e.EventDate, &e.Description, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updated, err)
	}
	return &e, nil
}

func (s *ScheduleStore) Create(ctx context.Context, params model.CreateScheduleParams) (*model.ScheduleEntry, error) {
	if err := params.ValidateCreate(); err != nil {
		return nil, err
	}
	ts := s.timestamp()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO schedules (title, location, event_date, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		params.Title, params.Location, params.EventDate, params.Description, ts, ts,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("create schedule", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewPersistenceError("create schedule", err)
	}
	return s.FindByID(ctx, int(id))
}

func (s *ScheduleStore) FindByID(ctx context.Context, id int) (*model.ScheduleEntry, error) {
	e, err := scanEntry(s.db.QueryRowContext(ctx, `SELECT `+columns+` FROM schedules WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.NewPersistenceError("find schedule", err)
	}
	return e, nil
}

// Update applies only the supplied fields. Validation runs after the
// existence check and before any write.
func (s *ScheduleStore) Update(ctx context.Context, id int, params model.UpdateScheduleParams) (*model.ScheduleEntry, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, apperrors.ErrNothingToUpdate
	}

	sets := []string{}
	args := []any{}
	if params.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, strings.TrimSpace(*params.Title))
	}
	if params.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, strings.TrimSpace(*params.Location))
	}
	if params.EventDate != nil {
		sets = append(sets, "event_date = ?")
		args = append(args, strings.TrimSpace(*params.EventDate))
	}
	if params.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, strings.TrimSpace(*params.Description))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, s.timestamp(), id)

	query := fmt.Sprintf(`UPDATE schedules SET %s WHERE id = ?`, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError("update schedule", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperrors.ErrScheduleNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *ScheduleStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return apperrors.NewPersistenceError("delete schedule", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewPersistenceError("delete schedule", err)
	}
	if n == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

func (s *ScheduleStore) List(ctx context.Context, filter model.ScheduleFilter, ref time.Time) ([]*model.ScheduleEntry, error) {
	w := filter.Window(ref)
	where, args := repository.WindowClause(w, "?")
	return s.query(ctx, "list schedules", `SELECT `+columns+` FROM schedules`+where+repository.OrderClause(w), args...)
}

// Search matches title, location or description ignoring case in any script.
// Both sides go through the driver's Unicode lower function, so an exact
// keyword always matches.
func (s *ScheduleStore) Search(ctx context.Context, keyword string) ([]*model.ScheduleEntry, error) {
	lower := database.SQLiteLowerFunc
	query := `
		SELECT ` + columns + `
		FROM schedules
		WHERE ` + lower + `(title) LIKE ` + lower + `(?) ESCAPE '\'
		   OR ` + lower + `(location) LIKE ` + lower + `(?) ESCAPE '\'
		   OR ` + lower + `(description) LIKE ` + lower + `(?) ESCAPE '\'
		ORDER BY event_date DESC, id DESC`
	pattern := repository.LikePattern(keyword)
	return s.query(ctx, "search schedules", query, pattern, pattern, pattern)
}

func (s *ScheduleStore) Stats(ctx context.Context, ref time.Time) (*model.ScheduleStats, error) {
	today := model.DateOf(ref)
	week := model.DateOf(ref.AddDate(0, 0, model.WeekWindowDays))
	month := model.DateOf(ref.AddDate(0, 0, model.MonthWindowDays))

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN event_date >= ?1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN event_date < ?1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN event_date >= ?1 AND event_date <= ?2 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN event_date >= ?1 AND event_date <= ?3 THEN 1 ELSE 0 END), 0)
		FROM schedules`

	var stats model.ScheduleStats
	err := s.db.QueryRowContext(ctx, query, today, week, month).Scan(
		&stats.Total, &stats.Upcoming, &stats.Past, &stats.Week, &stats.Month,
	)
	if err != nil {
		return nil, apperrors.NewPersistenceError("schedule stats", err)
	}
	return &stats, nil
}

func (s *ScheduleStore) query(ctx context.Context, op, query string, args ...any) ([]*model.ScheduleEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	defer rows.Close()

	out := make([]*model.ScheduleEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewPersistenceError(op, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistenceError(op, err)
	}
	return out, nil
}
