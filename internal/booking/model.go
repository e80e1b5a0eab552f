package booking

import "time"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Kind string

const (
	KindClass    Kind = "class"
	KindPersonal Kind = "personal"
)

// Booking reserves a room for a trainer-led class or personal training
// session over [StartTime, EndTime). Only non-cancelled bookings count
// for conflict checks.
type Booking struct {
	ID          int       `db:"id" json:"id"`
	RoomID      int       `db:"room_id" json:"room_id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	CreatedBy   int       `db:"created_by" json:"created_by"`
	Kind        Kind      `db:"kind" json:"kind"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	Capacity    int       `db:"capacity" json:"capacity"`
	Status      Status    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Registration struct {
	ID        int       `db:"id" json:"id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateBookingRequest struct {
	RoomID      int    `json:"room_id" binding:"required"`
	TrainerID   int    `json:"trainer_id" binding:"required"`
	Kind        string `json:"kind" binding:"omitempty,oneof=class personal"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
}

// CreateBookingInput carries already-parsed values into the service.
type CreateBookingInput struct {
	RoomID      int
	TrainerID   int
	CreatedBy   int
	Kind        Kind
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
}
