package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ConflictResponse is returned when a booking or availability request
// overlaps existing entries; Conflicts carries the clashing rows so the
// caller can pick a different time.
type ConflictResponse struct {
	Error     string      `json:"error" example:"time conflict"`
	Conflicts interface{} `json:"conflicts"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
