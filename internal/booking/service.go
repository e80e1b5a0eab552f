package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitclub/internal/email"
	"fitclub/internal/lock"
	"fitclub/internal/member"
	"fitclub/internal/metrics"
	"fitclub/internal/room"
	"fitclub/internal/schedule"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomInactive       = errors.New("room is not active")
	ErrInvalidInterval    = errors.New("end time must be after start time")
	ErrCapacityOutOfRange = errors.New("capacity must be between 1 and the room capacity")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotScheduled       = errors.New("booking is not in scheduled status")
	ErrClassFull          = errors.New("class is full")
	ErrAlreadyRegistered  = errors.New("member already registered for this class")
	ErrNotRegistered      = errors.New("member is not registered for this class")
)

// ConflictError rejects a booking that overlaps existing non-cancelled
// bookings in the same room. Conflicts lists every clashing booking so
// the caller can pick a different time.
type ConflictError struct {
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking overlaps %d existing booking(s) in this room", len(e.Conflicts))
}

type Service interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*Booking, error)
	CancelBooking(ctx context.Context, bookingID int) error
	CompleteBooking(ctx context.Context, bookingID int) error
	GetBookingByID(ctx context.Context, bookingID int) (*Booking, error)
	GetBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error)
	GetTrainerSchedule(ctx context.Context, trainerID int) ([]Booking, error)
	RegisterForClass(ctx context.Context, bookingID, memberID int) (*Registration, error)
	CancelRegistration(ctx context.Context, bookingID, memberID int) error
}

type service struct {
	repo         Repository
	roomRepo     room.Repository
	memberRepo   member.Repository
	locks        *lock.Keyed
	emailService *email.Service
}

func NewService(repo Repository, roomRepo room.Repository, memberRepo member.Repository, locks *lock.Keyed, emailService *email.Service) Service {
	return &service{
		repo:         repo,
		roomRepo:     roomRepo,
		memberRepo:   memberRepo,
		locks:        locks,
		emailService: emailService,
	}
}

// CreateBooking validates in order: room exists and is active, the
// interval is well-formed, the capacity fits the room, and no existing
// non-cancelled booking in the room overlaps the requested [start, end).
// The first failing check wins and nothing is written. The overlap check
// and the insert run under a per-room lock so concurrent requests for
// the same room cannot both pass the check against a stale read.
func (s *service) CreateBooking(ctx context.Context, in CreateBookingInput) (*Booking, error) {
	rm, err := s.roomRepo.GetRoomByID(ctx, in.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrRoomMissing) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if !rm.Active {
		return nil, ErrRoomInactive
	}

	if !in.EndTime.After(in.StartTime) {
		return nil, ErrInvalidInterval
	}

	if in.Capacity < 1 || in.Capacity > rm.Capacity {
		return nil, ErrCapacityOutOfRange
	}

	key := fmt.Sprintf("room:%d", in.RoomID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.repo.ListActiveBookingsForRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	var conflicts []Booking
	for _, b := range existing {
		if schedule.Overlaps(in.StartTime, in.EndTime, b.StartTime, b.EndTime) {
			conflicts = append(conflicts, b)
		}
	}
	if len(conflicts) > 0 {
		metrics.RecordBookingConflict()
		return nil, &ConflictError{Conflicts: conflicts}
	}

	kind := in.Kind
	if kind == "" {
		kind = KindClass
	}

	b := &Booking{
		RoomID:    in.RoomID,
		TrainerID: in.TrainerID,
		CreatedBy: in.CreatedBy,
		Kind:      kind,
		Name:      in.Name,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Capacity:  in.Capacity,
	}
	if in.Description != "" {
		b.Description = &in.Description
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(string(created.Kind))

	return created, nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID int) error {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	err = s.repo.UpdateBookingStatus(ctx, bookingID, StatusScheduled, StatusCancelled)
	if err != nil {
		if errors.Is(err, ErrStatusNotApplicable) {
			return ErrNotScheduled
		}
		return err
	}

	metrics.RecordBookingCancellation()

	if s.emailService != nil {
		m, _ := s.memberRepo.FindByID(ctx, b.CreatedBy)
		if m != nil {
			s.emailService.SendBookingCancellation(ctx, m.Email, m.FirstName, b.Name)
		}
	}

	return nil
}

func (s *service) CompleteBooking(ctx context.Context, bookingID int) error {
	err := s.repo.UpdateBookingStatus(ctx, bookingID, StatusScheduled, StatusCompleted)
	if err != nil {
		if errors.Is(err, ErrStatusNotApplicable) {
			return ErrNotScheduled
		}
		return err
	}
	return nil
}

func (s *service) GetBookingByID(ctx context.Context, bookingID int) (*Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *service) GetBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error) {
	return s.repo.GetBookingsByRoom(ctx, roomID)
}

func (s *service) GetTrainerSchedule(ctx context.Context, trainerID int) ([]Booking, error) {
	return s.repo.GetUpcomingBookingsForTrainer(ctx, trainerID, time.Now())
}

// RegisterForClass takes a seat in a scheduled class. The seat count is
// checked and the registration inserted under the booking's room lock so
// the class cannot be oversubscribed by concurrent registrations.
func (s *service) RegisterForClass(ctx context.Context, bookingID, memberID int) (*Registration, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if b.Status != StatusScheduled {
		return nil, ErrNotScheduled
	}

	key := fmt.Sprintf("room:%d", b.RoomID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	count, err := s.repo.CountActiveRegistrations(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if count >= b.Capacity {
		return nil, ErrClassFull
	}

	hasRegistration, err := s.repo.MemberHasRegistration(ctx, bookingID, memberID)
	if err != nil {
		return nil, err
	}

	if hasRegistration {
		return nil, ErrAlreadyRegistered
	}

	reg, err := s.repo.CreateRegistration(ctx, bookingID, memberID)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		m, _ := s.memberRepo.FindByID(ctx, memberID)
		if m != nil {
			s.emailService.SendBookingConfirmation(
				ctx,
				m.Email,
				m.FirstName,
				b.Name,
				b.StartTime.Format("Jan 2, 2006 at 3:04 PM"),
			)
		}
	}

	return reg, nil
}

func (s *service) CancelRegistration(ctx context.Context, bookingID, memberID int) error {
	err := s.repo.CancelRegistration(ctx, bookingID, memberID)
	if err != nil {
		if errors.Is(err, ErrRegistrationMissing) {
			return ErrNotRegistered
		}
		return err
	}
	return nil
}
