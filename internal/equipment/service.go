package equipment

import (
	"context"
	"errors"
	"strings"

	"fitclub/internal/email"
	"fitclub/internal/member"
	"fitclub/internal/metrics"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrRecordNotFound    = errors.New("maintenance record not found")
	ErrEmptyDescription  = errors.New("issue description must not be empty")
	ErrUnknownStatus     = errors.New("unknown maintenance status")
	ErrRecordResolved    = errors.New("resolved records cannot change status")
	ErrInvalidTransition = errors.New("invalid maintenance status transition")
)

type Service interface {
	CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
	GetEquipment(ctx context.Context, id int) (*Equipment, error)
	ListRoomEquipment(ctx context.Context, roomID int) ([]Equipment, error)
	ReportIssue(ctx context.Context, equipmentID, reportedBy int, description string) (*MaintenanceRecord, error)
	UpdateStatus(ctx context.Context, recordID int, req UpdateStatusRequest) (*MaintenanceRecord, error)
	GetMaintenanceHistory(ctx context.Context, equipmentID int) ([]MaintenanceRecord, error)
}

type service struct {
	repo         Repository
	memberRepo   member.Repository
	emailService *email.Service
}

func NewService(repo Repository, memberRepo member.Repository, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		memberRepo:   memberRepo,
		emailService: emailService,
	}
}

func (s *service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	eq := &Equipment{
		RoomID: req.RoomID,
		Name:   req.Name,
	}
	if req.Type != "" {
		eq.Type = &req.Type
	}
	if req.SerialNumber != "" {
		eq.SerialNumber = &req.SerialNumber
	}

	if err := s.repo.CreateEquipment(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *service) GetEquipment(ctx context.Context, id int) (*Equipment, error) {
	eq, err := s.repo.GetEquipmentByID(ctx, id)
	if errors.Is(err, ErrEquipmentMissing) {
		return nil, ErrEquipmentNotFound
	}
	return eq, err
}

func (s *service) ListRoomEquipment(ctx context.Context, roomID int) ([]Equipment, error) {
	return s.repo.ListEquipmentForRoom(ctx, roomID)
}

func (s *service) ReportIssue(ctx context.Context, equipmentID, reportedBy int, description string) (*MaintenanceRecord, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	eq, err := s.repo.GetEquipmentByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, ErrEquipmentMissing) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	record := &MaintenanceRecord{
		EquipmentID:      equipmentID,
		ReportedBy:       reportedBy,
		IssueDescription: description,
	}
	if err := s.repo.InsertRecord(ctx, record); err != nil {
		return nil, err
	}

	metrics.RecordMaintenanceReport()
	if eq.Operational {
		metrics.EquipmentOutOfOrder.Inc()
	}
	return record, nil
}

func (s *service) UpdateStatus(ctx context.Context, recordID int, req UpdateStatusRequest) (*MaintenanceRecord, error) {
	target := RecordStatus(req.Status)
	if target != StatusOpen && target != StatusInProgress && target != StatusResolved {
		return nil, ErrUnknownStatus
	}

	record, err := s.repo.GetRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordMissing) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if record.Status == StatusResolved {
		return nil, ErrRecordResolved
	}
	if !validTransition(record.Status, target) {
		return nil, ErrInvalidTransition
	}

	if target == StatusResolved {
		operational, err := s.repo.ResolveRecord(ctx, record.ID, record.EquipmentID, req.ResolutionNotes)
		if err != nil {
			return nil, err
		}
		metrics.RecordMaintenanceResolved()
		if operational {
			metrics.EquipmentOutOfOrder.Dec()
		}
		s.notifyReporter(ctx, record)
	} else {
		if err := s.repo.UpdateRecordStatus(ctx, record.ID, record.Status, target); err != nil {
			return nil, err
		}
	}

	return s.repo.GetRecordByID(ctx, recordID)
}

func (s *service) GetMaintenanceHistory(ctx context.Context, equipmentID int) ([]MaintenanceRecord, error) {
	if _, err := s.GetEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.repo.ListRecordsForEquipment(ctx, equipmentID)
}

// notifyReporter tells the member who filed the issue that it was
// resolved. Best effort, never fails the resolution.
func (s *service) notifyReporter(ctx context.Context, record *MaintenanceRecord) {
	if s.emailService == nil || s.memberRepo == nil {
		return
	}
	m, _ := s.memberRepo.FindByID(ctx, record.ReportedBy)
	if m == nil {
		return
	}
	eq, err := s.repo.GetEquipmentByID(ctx, record.EquipmentID)
	if err != nil {
		return
	}
	s.emailService.SendMaintenanceResolved(ctx, m.Email, m.FirstName, eq.Name)
}

// validTransition encodes the forward-only record lifecycle.
func validTransition(from, to RecordStatus) bool {
	switch from {
	case StatusOpen:
		return to == StatusInProgress || to == StatusResolved
	case StatusInProgress:
		return to == StatusResolved
	default:
		return false
	}
}
