package booking

import (
	"context"
	"time"
)

type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	ListActiveBookingsForRoom(ctx context.Context, roomID int) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, from, to Status) error
	GetBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error)
	GetUpcomingBookingsForTrainer(ctx context.Context, trainerID int, after time.Time) ([]Booking, error)

	CountActiveRegistrations(ctx context.Context, bookingID int) (int, error)
	MemberHasRegistration(ctx context.Context, bookingID, memberID int) (bool, error)
	CreateRegistration(ctx context.Context, bookingID, memberID int) (*Registration, error)
	CancelRegistration(ctx context.Context, bookingID, memberID int) error
}
