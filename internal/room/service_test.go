package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRoom(ctx context.Context, name, location string, capacity int) (*Room, error) {
	args := m.Called(ctx, name, location, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRepository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Room), args.Error(1)
}

func (m *MockRepository) GetAllRooms(ctx context.Context) ([]Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Room), args.Error(1)
}

func (m *MockRepository) SetRoomActive(ctx context.Context, id int, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func TestService_CreateRoom(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CreateRoom", mock.Anything, "Studio A", "Second floor", 20).Return(&Room{
		ID: 1, Name: "Studio A", Capacity: 20, Active: true,
	}, nil)

	room, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name: "Studio A", Location: "Second floor", Capacity: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Studio A", room.Name)
	assert.True(t, room.Active)
	mockRepo.AssertExpectations(t)
}

func TestService_CreateRoom_InvalidCapacity(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	room, err := service.CreateRoom(context.Background(), CreateRoomRequest{
		Name: "Studio A", Capacity: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.Nil(t, room)
	mockRepo.AssertExpectations(t)
}

func TestService_GetRoomByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetRoomByID", mock.Anything, 99).Return(nil, ErrRoomMissing)

	room, err := service.GetRoomByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, room)
	mockRepo.AssertExpectations(t)
}

func TestService_DeactivateRoom(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("SetRoomActive", mock.Anything, 1, false).Return(nil)

	assert.NoError(t, service.DeactivateRoom(context.Background(), 1))
	mockRepo.AssertExpectations(t)
}

func TestService_ActivateRoom_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("SetRoomActive", mock.Anything, 99, true).Return(ErrRoomMissing)

	assert.ErrorIs(t, service.ActivateRoom(context.Background(), 99), ErrRoomNotFound)
	mockRepo.AssertExpectations(t)
}
