package availability

import (
	"context"
	"errors"
	"testing"

	"fitclub/internal/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateSlot(ctx context.Context, slot *Slot) error {
	args := m.Called(ctx, slot)
	if args.Error(0) == nil {
		slot.ID = 1
	}
	return args.Error(0)
}

func (m *MockRepository) ListSlotsForTrainerDay(ctx context.Context, trainerID, dayOfWeek int) ([]Slot, error) {
	args := m.Called(ctx, trainerID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepository) ListSlotsForTrainer(ctx context.Context, trainerID int) ([]Slot, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepository) DeleteSlot(ctx context.Context, id, trainerID int) error {
	args := m.Called(ctx, id, trainerID)
	return args.Error(0)
}

func newTestService(repo Repository) Service {
	return NewService(repo, lock.NewKeyed())
}

func TestService_AddSlot(t *testing.T) {
	tests := []struct {
		name      string
		req       AddSlotRequest
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "first slot of the day",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			setupMock: func(m *MockRepository) {
				m.On("ListSlotsForTrainerDay", mock.Anything, 1, 1).Return([]Slot{}, nil)
				m.On("CreateSlot", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "day of week zero",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 0, StartTime: "09:00", EndTime: "12:00"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidDay,
		},
		{
			name: "day of week eight",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 8, StartTime: "09:00", EndTime: "12:00"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidDay,
		},
		{
			name: "malformed start time",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 1, StartTime: "9am", EndTime: "12:00"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidClock,
		},
		{
			name: "end equals start",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidInterval,
		},
		{
			name: "end before start",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidInterval,
		},
		{
			name: "touching slots do not conflict",
			req:  AddSlotRequest{TrainerID: 1, DayOfWeek: 1, StartTime: "12:00", EndTime: "14:00"},
			setupMock: func(m *MockRepository) {
				m.On("ListSlotsForTrainerDay", mock.Anything, 1, 1).Return([]Slot{
					{ID: 10, TrainerID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
				}, nil)
				m.On("CreateSlot", mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			slot, err := newTestService(mockRepo).AddSlot(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, slot)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, slot)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_AddSlot_RecurringDefaultsTrue(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 7, 1).Return([]Slot{}, nil)
	mockRepo.On("CreateSlot", mock.Anything, mock.MatchedBy(func(s *Slot) bool {
		return s.Recurring
	})).Return(nil)

	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00",
	})

	assert.NoError(t, err)
	assert.True(t, slot.Recurring)
	mockRepo.AssertExpectations(t)
}

func TestService_AddSlot_OneOff(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 7, 1).Return([]Slot{}, nil)
	mockRepo.On("CreateSlot", mock.Anything, mock.MatchedBy(func(s *Slot) bool {
		return !s.Recurring
	})).Return(nil)

	oneOff := false
	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00",
		Recurring: &oneOff,
	})

	assert.NoError(t, err)
	assert.False(t, slot.Recurring)
	mockRepo.AssertExpectations(t)
}

func TestService_AddSlot_OneOffStillConflicts(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	// The flag never loosens the overlap rule: a one-off window still
	// collides with an existing recurring one on the same weekday.
	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 7, 1).Return([]Slot{
		{ID: 10, TrainerID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", Recurring: true},
	}, nil)

	oneOff := false
	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 7, DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00",
		Recurring: &oneOff,
	})

	assert.Nil(t, slot)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	mockRepo.AssertExpectations(t)
}

func TestService_AddSlot_SameDayConflict(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	existing := Slot{ID: 10, TrainerID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}

	// Monday 11:00-13:00 overlaps the Monday 09:00-12:00 slot.
	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 7, 1).Return([]Slot{existing}, nil)

	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 7, DayOfWeek: 1, StartTime: "11:00", EndTime: "13:00",
	})

	assert.Nil(t, slot)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, 10, conflict.Conflicts[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestService_AddSlot_DifferentDaysNeverConflict(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	// Tuesday 11:00-13:00 is fine even though Monday has 09:00-12:00; only
	// slots of the same weekday are compared.
	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 7, 2).Return([]Slot{}, nil)
	mockRepo.On("CreateSlot", mock.Anything, mock.Anything).Return(nil)

	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 7, DayOfWeek: 2, StartTime: "11:00", EndTime: "13:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, slot)
	assert.Equal(t, 2, slot.DayOfWeek)
	mockRepo.AssertExpectations(t)
}

func TestService_AddSlot_DifferentTrainersNeverConflict(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("ListSlotsForTrainerDay", mock.Anything, 8, 1).Return([]Slot{}, nil)
	mockRepo.On("CreateSlot", mock.Anything, mock.Anything).Return(nil)

	slot, err := service.AddSlot(context.Background(), AddSlotRequest{
		TrainerID: 8, DayOfWeek: 1, StartTime: "09:30", EndTime: "10:30",
	})

	assert.NoError(t, err)
	assert.NotNil(t, slot)
	mockRepo.AssertExpectations(t)
}

func TestService_RemoveSlot(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("DeleteSlot", mock.Anything, 5, 7).Return(nil)
	assert.NoError(t, service.RemoveSlot(context.Background(), 5, 7))

	mockRepo.On("DeleteSlot", mock.Anything, 99, 7).Return(ErrSlotMissing)
	assert.ErrorIs(t, service.RemoveSlot(context.Background(), 99, 7), ErrSlotNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_GetTrainerSchedule(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("ListSlotsForTrainer", mock.Anything, 7).Return([]Slot{
		{ID: 1, TrainerID: 7, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{ID: 2, TrainerID: 7, DayOfWeek: 3, StartTime: "14:00", EndTime: "18:00"},
	}, nil)

	slots, err := service.GetTrainerSchedule(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	mockRepo.AssertExpectations(t)
}

func TestService_GetTrainerSchedule_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("ListSlotsForTrainer", mock.Anything, 7).Return(nil, errors.New("db down"))

	slots, err := service.GetTrainerSchedule(context.Background(), 7)

	assert.Error(t, err)
	assert.Nil(t, slots)
	mockRepo.AssertExpectations(t)
}
