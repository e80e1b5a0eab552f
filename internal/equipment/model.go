package equipment

import "time"

// RecordStatus is the lifecycle state of a maintenance record. Records
// move open -> in_progress -> resolved; resolved is terminal.
type RecordStatus string

const (
	StatusOpen       RecordStatus = "open"
	StatusInProgress RecordStatus = "in_progress"
	StatusResolved   RecordStatus = "resolved"
)

type Equipment struct {
	ID           int       `db:"id" json:"id"`
	RoomID       int       `db:"room_id" json:"room_id"`
	Name         string    `db:"name" json:"name"`
	Type         *string   `db:"type" json:"type,omitempty"`
	SerialNumber *string   `db:"serial_number" json:"serial_number,omitempty"`
	Operational  bool      `db:"operational" json:"operational"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type MaintenanceRecord struct {
	ID               int          `db:"id" json:"id"`
	EquipmentID      int          `db:"equipment_id" json:"equipment_id"`
	ReportedBy       int          `db:"reported_by" json:"reported_by"`
	ReportedAt       time.Time    `db:"reported_at" json:"reported_at"`
	ResolvedAt       *time.Time   `db:"resolved_at" json:"resolved_at,omitempty"`
	Status           RecordStatus `db:"status" json:"status"`
	IssueDescription string       `db:"issue_description" json:"issue_description"`
	ResolutionNotes  *string      `db:"resolution_notes" json:"resolution_notes,omitempty"`
}

type CreateEquipmentRequest struct {
	RoomID       int    `json:"room_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	SerialNumber string `json:"serial_number"`
}

type ReportIssueRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required,oneof=open in_progress resolved"`
	ResolutionNotes string `json:"resolution_notes"`
}
