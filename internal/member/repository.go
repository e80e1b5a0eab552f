package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrMemberMissing = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, firstName, lastName, email, passwordHash, role, phone string) (*Member, error) {
	query := `
		INSERT INTO members (first_name, last_name, email, password_hash, role, phone)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, first_name, last_name, email, password_hash, role, phone, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, firstName, lastName, email, passwordHash, role, phone)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, role, phone, created_at
		FROM members
		WHERE email = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberMissing
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, role, phone, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberMissing
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id int, firstName, lastName, phone string) (*Member, error) {
	query := `
		UPDATE members
		SET first_name = COALESCE(NULLIF($1, ''), first_name),
		    last_name  = COALESCE(NULLIF($2, ''), last_name),
		    phone      = COALESCE(NULLIF($3, ''), phone)
		WHERE id = $4
		RETURNING id, first_name, last_name, email, password_hash, role, phone, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, firstName, lastName, phone, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberMissing
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) AddHealthMetric(ctx context.Context, m *HealthMetric) (*HealthMetric, error) {
	query := `
		INSERT INTO health_metrics (member_id, weight_kg, body_fat_pct, resting_hr, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, member_id, weight_kg, body_fat_pct, resting_hr, notes, recorded_at
	`

	var created HealthMetric
	err := r.db.GetContext(ctx, &created, query, m.MemberID, m.WeightKg, m.BodyFatPct, m.RestingHR, m.Notes)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetHealthMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	query := `
		SELECT id, member_id, weight_kg, body_fat_pct, resting_hr, notes, recorded_at
		FROM health_metrics
		WHERE member_id = $1
		ORDER BY recorded_at DESC
	`

	var metrics []HealthMetric
	err := r.db.SelectContext(ctx, &metrics, query, memberID)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}
