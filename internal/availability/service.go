package availability

import (
	"context"
	"errors"
	"fmt"

	"fitclub/internal/lock"
	"fitclub/internal/metrics"
	"fitclub/internal/schedule"
)

var (
	ErrInvalidDay      = errors.New("day of week must be between 1 and 7")
	ErrInvalidClock    = errors.New("start and end must be HH:MM clock times")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrSlotNotFound    = errors.New("availability slot not found")
)

// ConflictError reports the existing slots on the same weekday that
// overlap the requested window.
type ConflictError struct {
	Conflicts []Slot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("availability conflicts with %d existing slot(s)", len(e.Conflicts))
}

type Service interface {
	AddSlot(ctx context.Context, req AddSlotRequest) (*Slot, error)
	GetTrainerSchedule(ctx context.Context, trainerID int) ([]Slot, error)
	RemoveSlot(ctx context.Context, slotID, trainerID int) error
}

type service struct {
	repo  Repository
	locks *lock.Keyed
}

func NewService(repo Repository, locks *lock.Keyed) Service {
	return &service{repo: repo, locks: locks}
}

func (s *service) AddSlot(ctx context.Context, req AddSlotRequest) (*Slot, error) {
	if req.DayOfWeek < 1 || req.DayOfWeek > 7 {
		return nil, ErrInvalidDay
	}

	start, err := schedule.ParseClockTime(req.StartTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	end, err := schedule.ParseClockTime(req.EndTime)
	if err != nil {
		return nil, ErrInvalidClock
	}
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	// Only slots of the same trainer on the same weekday can collide, so
	// the lock key includes both and different days never contend.
	key := fmt.Sprintf("trainer:%d:day:%d", req.TrainerID, req.DayOfWeek)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.repo.ListSlotsForTrainerDay(ctx, req.TrainerID, req.DayOfWeek)
	if err != nil {
		return nil, err
	}

	var conflicts []Slot
	for _, slot := range existing {
		slotStart, err := schedule.ParseClockTime(slot.StartTime)
		if err != nil {
			return nil, err
		}
		slotEnd, err := schedule.ParseClockTime(slot.EndTime)
		if err != nil {
			return nil, err
		}
		if schedule.OverlapsClock(start, end, slotStart, slotEnd) {
			conflicts = append(conflicts, slot)
		}
	}
	if len(conflicts) > 0 {
		metrics.RecordAvailabilityConflict()
		return nil, &ConflictError{Conflicts: conflicts}
	}

	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	slot := &Slot{
		TrainerID: req.TrainerID,
		DayOfWeek: req.DayOfWeek,
		StartTime: start.String(),
		EndTime:   end.String(),
		Recurring: recurring,
	}
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	metrics.RecordAvailabilitySlot()
	return slot, nil
}

func (s *service) GetTrainerSchedule(ctx context.Context, trainerID int) ([]Slot, error) {
	return s.repo.ListSlotsForTrainer(ctx, trainerID)
}

func (s *service) RemoveSlot(ctx context.Context, slotID, trainerID int) error {
	err := s.repo.DeleteSlot(ctx, slotID, trainerID)
	if errors.Is(err, ErrSlotMissing) {
		return ErrSlotNotFound
	}
	return err
}
