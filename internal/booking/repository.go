package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingMissing      = errors.New("booking not found")
	ErrStatusNotApplicable = errors.New("booking not in expected status")
	ErrRegistrationMissing = errors.New("registration not found or already cancelled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'scheduled')
		RETURNING id, room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status, created_at
	`

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.RoomID, b.TrainerID, b.CreatedBy, b.Kind, b.Name, b.Description,
		b.StartTime, b.EndTime, b.Capacity,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListActiveBookingsForRoom(ctx context.Context, roomID int) ([]Booking, error) {
	query := `
		SELECT id, room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status, created_at
		FROM bookings
		WHERE room_id = $1 AND status <> 'cancelled'
		ORDER BY start_time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, roomID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id int, from, to Status) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrStatusNotApplicable
	}

	return nil
}

func (r *repository) GetBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error) {
	query := `
		SELECT id, room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status, created_at
		FROM bookings
		WHERE room_id = $1
		ORDER BY start_time DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, roomID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetUpcomingBookingsForTrainer(ctx context.Context, trainerID int, after time.Time) ([]Booking, error) {
	query := `
		SELECT id, room_id, trainer_id, created_by, kind, name, description, start_time, end_time, capacity, status, created_at
		FROM bookings
		WHERE trainer_id = $1 AND start_time >= $2 AND status <> 'cancelled'
		ORDER BY start_time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, trainerID, after)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CountActiveRegistrations(ctx context.Context, bookingID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM class_registrations
		WHERE booking_id = $1 AND status = 'registered'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, bookingID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) MemberHasRegistration(ctx context.Context, bookingID, memberID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM class_registrations
			WHERE booking_id = $1 AND member_id = $2 AND status = 'registered'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, bookingID, memberID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) CreateRegistration(ctx context.Context, bookingID, memberID int) (*Registration, error) {
	query := `
		INSERT INTO class_registrations (booking_id, member_id, status)
		VALUES ($1, $2, 'registered')
		RETURNING id, booking_id, member_id, status, created_at
	`

	var reg Registration
	err := r.db.GetContext(ctx, &reg, query, bookingID, memberID)
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *repository) CancelRegistration(ctx context.Context, bookingID, memberID int) error {
	query := `
		UPDATE class_registrations
		SET status = 'cancelled'
		WHERE booking_id = $1 AND member_id = $2 AND status = 'registered'
	`

	result, err := r.db.ExecContext(ctx, query, bookingID, memberID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRegistrationMissing
	}

	return nil
}
