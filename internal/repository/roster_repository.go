package repository

import (
	"context"
	"time"

	"blackeagles/internal/model"
	apperrors "blackeagles/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PilotRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.Pilot, error)
	FindByID(ctx context.Context, id int) (*model.Pilot, error)
	Create(ctx context.Context, pilot *model.Pilot) (*model.Pilot, error)
	Update(ctx context.Context, pilot *model.Pilot) (*model.Pilot, error)
	Delete(ctx context.Context, id int) error
}

type CrewRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.MaintenanceCrew, error)
	FindByID(ctx context.Context, id int) (*model.MaintenanceCrew, error)
	Create(ctx context.Context, crew *model.MaintenanceCrew) (*model.MaintenanceCrew, error)
	Update(ctx context.Context, crew *model.MaintenanceCrew) (*model.MaintenanceCrew, error)
	Delete(ctx context.Context, id int) error
}

type CandidateRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.Candidate, error)
	FindByID(ctx context.Context, id int) (*model.Candidate, error)
	Create(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error)
	Update(ctx context.Context, candidate *model.Candidate) (*model.Candidate, error)
	Delete(ctx context.Context, id int) error
}

type CommanderRepository interface {
	// List filters by lang unless it is empty.
	List(ctx context.Context, activeOnly bool, lang string) ([]*model.CommanderGreeting, error)
	FindByID(ctx context.Context, id int) (*model.CommanderGreeting, error)
	Create(ctx context.Context, commander *model.CommanderGreeting) (*model.CommanderGreeting, error)
	Update(ctx context.Context, commander *model.CommanderGreeting) (*model.CommanderGreeting, error)
	Delete(ctx context.Context, id int) error
}

func activeClause(activeOnly bool) string {
	if activeOnly {
		return ` WHERE is_active = TRUE`
	}
	return ``
}

// Pilots

const pilotColumns = `id, number, position, callsign, generation, aircraft, photo_url, order_num, is_active, created_at, updated_at`

type PilotRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPilotRepository(pool *pgxpool.Pool) PilotRepository {
	return &PilotRepositoryImpl{pool: pool}
}

func (r *PilotRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*model.Pilot, error) {
	return collect[model.Pilot](ctx, r.pool, "list pilots",
		`SELECT `+pilotColumns+` FROM pilots`+activeClause(activeOnly)+` ORDER BY order_num, id`)
}

func (r *PilotRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Pilot, error) {
	return collectOne[model.Pilot](ctx, r.pool, apperrors.ErrPilotNotFound, "find pilot",
		`SELECT `+pilotColumns+` FROM pilots WHERE id = $1`, id)
}

func (r *PilotRepositoryImpl) Create(ctx context.Context, p *model.Pilot) (*model.Pilot, error) {
	query := `
		INSERT INTO pilots (number, position, callsign, generation, aircraft, photo_url, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + pilotColumns

	return collectOne[model.Pilot](ctx, r.pool, apperrors.ErrPilotNotFound, "create pilot", query,
		p.Number, p.Position, p.Callsign, p.Generation, p.Aircraft, p.PhotoURL, p.OrderNum, p.IsActive)
}

func (r *PilotRepositoryImpl) Update(ctx context.Context, p *model.Pilot) (*model.Pilot, error) {
	query := `
		UPDATE pilots
		SET number = $1, position = $2, callsign = $3, generation = $4, aircraft = $5,
			photo_url = $6, order_num = $7, is_active = $8, updated_at = $9
		WHERE id = $10
		RETURNING ` + pilotColumns

	return collectOne[model.Pilot](ctx, r.pool, apperrors.ErrPilotNotFound, "update pilot", query,
		p.Number, p.Position, p.Callsign, p.Generation, p.Aircraft, p.PhotoURL, p.OrderNum, p.IsActive,
		time.Now().UTC(), p.ID)
}

func (r *PilotRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrPilotNotFound, "delete pilot", `DELETE FROM pilots WHERE id = $1`, id)
}

// Maintenance crew

const crewColumns = `id, name, role, callsign, photo_url, bio, order_num, is_active, created_at, updated_at`

type CrewRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCrewRepository(pool *pgxpool.Pool) CrewRepository {
	return &CrewRepositoryImpl{pool: pool}
}

func (r *CrewRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*model.MaintenanceCrew, error) {
	return collect[model.MaintenanceCrew](ctx, r.pool, "list crew",
		`SELECT `+crewColumns+` FROM maintenance_crew`+activeClause(activeOnly)+` ORDER BY order_num, id`)
}

func (r *CrewRepositoryImpl) FindByID(ctx context.Context, id int) (*model.MaintenanceCrew, error) {
	return collectOne[model.MaintenanceCrew](ctx, r.pool, apperrors.ErrCrewNotFound, "find crew",
		`SELECT `+crewColumns+` FROM maintenance_crew WHERE id = $1`, id)
}

func (r *CrewRepositoryImpl) Create(ctx context.Context, c *model.MaintenanceCrew) (*model.MaintenanceCrew, error) {
	query := `
		INSERT INTO maintenance_crew (name, role, callsign, photo_url, bio, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + crewColumns

	return collectOne[model.MaintenanceCrew](ctx, r.pool, apperrors.ErrCrewNotFound, "create crew", query,
		c.Name, c.Role, c.Callsign, c.PhotoURL, c.Bio, c.OrderNum, c.IsActive)
}

func (r *CrewRepositoryImpl) Update(ctx context.Context, c *model.MaintenanceCrew) (*model.MaintenanceCrew, error) {
	query := `
		UPDATE maintenance_crew
		SET name = $1, role = $2, callsign = $3, photo_url = $4, bio = $5,
			order_num = $6, is_active = $7, updated_at = $8
		WHERE id = $9
		RETURNING ` + crewColumns

	return collectOne[model.MaintenanceCrew](ctx, r.pool, apperrors.ErrCrewNotFound, "update crew", query,
		c.Name, c.Role, c.Callsign, c.PhotoURL, c.Bio, c.OrderNum, c.IsActive, time.Now().UTC(), c.ID)
}

func (r *CrewRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrCrewNotFound, "delete crew", `DELETE FROM maintenance_crew WHERE id = $1`, id)
}

// Candidates

const candidateColumns = `id, name, callsign, photo_url, bio, order_num, is_active, created_at, updated_at`

type CandidateRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) CandidateRepository {
	return &CandidateRepositoryImpl{pool: pool}
}

func (r *CandidateRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*model.Candidate, error) {
	return collect[model.Candidate](ctx, r.pool, "list candidates",
		`SELECT `+candidateColumns+` FROM candidates`+activeClause(activeOnly)+` ORDER BY order_num, id`)
}

func (r *CandidateRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Candidate, error) {
	return collectOne[model.Candidate](ctx, r.pool, apperrors.ErrCandidateNotFound, "find candidate",
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
}

func (r *CandidateRepositoryImpl) Create(ctx context.Context, c *model.Candidate) (*model.Candidate, error) {
	query := `
		INSERT INTO candidates (name, callsign, photo_url, bio, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + candidateColumns

	return collectOne[model.Candidate](ctx, r.pool, apperrors.ErrCandidateNotFound, "create candidate", query,
		c.Name, c.Callsign, c.PhotoURL, c.Bio, c.OrderNum, c.IsActive)
}

func (r *CandidateRepositoryImpl) Update(ctx context.Context, c *model.Candidate) (*model.Candidate, error) {
	query := `
		UPDATE candidates
		SET name = $1, callsign = $2, photo_url = $3, bio = $4, order_num = $5,
			is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + candidateColumns

	return collectOne[model.Candidate](ctx, r.pool, apperrors.ErrCandidateNotFound, "update candidate", query,
		c.Name, c.Callsign, c.PhotoURL, c.Bio, c.OrderNum, c.IsActive, time.Now().UTC(), c.ID)
}

func (r *CandidateRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrCandidateNotFound, "delete candidate", `DELETE FROM candidates WHERE id = $1`, id)
}

// Commander greetings

const commanderColumns = `id, name, rank, callsign, generation, aircraft, photo_url, greeting_text, lang, order_num, is_active, created_at, updated_at`

type CommanderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCommanderRepository(pool *pgxpool.Pool) CommanderRepository {
	return &CommanderRepositoryImpl{pool: pool}
}

func (r *CommanderRepositoryImpl) List(ctx context.Context, activeOnly bool, lang string) ([]*model.CommanderGreeting, error) {
	query := `SELECT ` + commanderColumns + ` FROM commander_greetings WHERE ($1::boolean = FALSE OR is_active = TRUE) AND ($2::text = '' OR lang = $2) ORDER BY order_num, id`
	return collect[model.CommanderGreeting](ctx, r.pool, "list commanders", query, activeOnly, lang)
}

func (r *CommanderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.CommanderGreeting, error) {
	return collectOne[model.CommanderGreeting](ctx, r.pool, apperrors.ErrCommanderNotFound, "find commander",
		`SELECT `+commanderColumns+` FROM commander_greetings WHERE id = $1`, id)
}

func (r *CommanderRepositoryImpl) Create(ctx context.Context, c *model.CommanderGreeting) (*model.CommanderGreeting, error) {
	query := `
		INSERT INTO commander_greetings (name, rank, callsign, generation, aircraft, photo_url, greeting_text, lang, order_num, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + commanderColumns

	return collectOne[model.CommanderGreeting](ctx, r.pool, apperrors.ErrCommanderNotFound, "create commander", query,
		c.Name, c.Rank, c.Callsign, c.Generation, c.Aircraft, c.PhotoURL, c.GreetingText, c.Lang, c.OrderNum, c.IsActive)
}

func (r *CommanderRepositoryImpl) Update(ctx context.Context, c *model.CommanderGreeting) (*model.CommanderGreeting, error) {
	query := `
		UPDATE commander_greetings
		SET name = $1, rank = $2, callsign = $3, generation = $4, aircraft = $5, photo_url = $6,
			greeting_text = $7, lang = $8, order_num = $9, is_active = $10, updated_at = $11
		WHERE id = $12
		RETURNING ` + commanderColumns

	return collectOne[model.CommanderGreeting](ctx, r.pool, apperrors.ErrCommanderNotFound, "update commander", query,
		c.Name, c.Rank, c.Callsign, c.Generation, c.Aircraft, c.PhotoURL, c.GreetingText, c.Lang,
		c.OrderNum, c.IsActive, time.Now().UTC(), c.ID)
}

func (r *CommanderRepositoryImpl) Delete(ctx context.Context, id int) error {
	return execOne(ctx, r.pool, apperrors.ErrCommanderNotFound, "delete commander", `DELETE FROM commander_greetings WHERE id = $1`, id)
}
