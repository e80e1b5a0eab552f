package member

import "time"

type Member struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// HealthMetric is a free-form health history entry logged by a member.
type HealthMetric struct {
	ID         int       `db:"id" json:"id"`
	MemberID   int       `db:"member_id" json:"member_id"`
	WeightKg   *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	BodyFatPct *float64  `db:"body_fat_pct" json:"body_fat_pct,omitempty"`
	RestingHR  *int      `db:"resting_hr" json:"resting_hr,omitempty"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Member       Member `json:"member"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type AddHealthMetricRequest struct {
	WeightKg   *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyFatPct *float64 `json:"body_fat_pct" binding:"omitempty,gte=0,lte=100"`
	RestingHR  *int     `json:"resting_hr" binding:"omitempty,gt=0"`
	Notes      string   `json:"notes"`
}
