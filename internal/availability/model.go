package availability

import "time"

// Slot is a weekly availability window for a trainer. Recurring slots
// repeat every week; one-off slots cover a single occurrence of the
// weekday. Times are clock times within the day, stored as "HH:MM"
// strings. The overlap rule ignores the flag: any two windows of the
// same trainer on the same weekday are compared.
type Slot struct {
	ID        int       `db:"id" json:"id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Recurring bool      `db:"recurring" json:"recurring"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type AddSlotRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	// Recurring defaults to true when omitted.
	Recurring *bool `json:"recurring"`
}
