package availability

import "context"

type Repository interface {
	CreateSlot(ctx context.Context, slot *Slot) error
	ListSlotsForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Slot, error)
	ListSlotsForTrainer(ctx context.Context, trainerID int) ([]Slot, error)
	DeleteSlot(ctx context.Context, id, trainerID int) error
}
