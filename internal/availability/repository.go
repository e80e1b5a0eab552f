package availability

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSlotMissing = errors.New("availability slot missing")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSlot(ctx context.Context, slot *Slot) error {
	query := `
		INSERT INTO availability_slots (trainer_id, day_of_week, start_time, end_time, recurring)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.GetContext(ctx, slot, query,
		slot.TrainerID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Recurring)
}

func (r *repository) ListSlotsForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Slot, error) {
	// TIME columns come back with seconds, trim to HH:MM for the clock parser.
	query := `
		SELECT id, trainer_id, day_of_week,
		       to_char(start_time, 'HH24:MI') AS start_time,
		       to_char(end_time, 'HH24:MI') AS end_time,
		       recurring, created_at
		FROM availability_slots
		WHERE trainer_id = $1 AND day_of_week = $2
		ORDER BY start_time`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, trainerID, dayOfWeek)
	return slots, err
}

func (r *repository) ListSlotsForTrainer(ctx context.Context, trainerID int) ([]Slot, error) {
	query := `
		SELECT id, trainer_id, day_of_week,
		       to_char(start_time, 'HH24:MI') AS start_time,
		       to_char(end_time, 'HH24:MI') AS end_time,
		       recurring, created_at
		FROM availability_slots
		WHERE trainer_id = $1
		ORDER BY day_of_week, start_time`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, trainerID)
	return slots, err
}

func (r *repository) DeleteSlot(ctx context.Context, id, trainerID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM availability_slots WHERE id = $1 AND trainer_id = $2`, id, trainerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSlotMissing
	}
	return nil
}
