package room

import (
	"context"
	"errors"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	DeactivateRoom(ctx context.Context, id int) error
	ActivateRoom(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return s.repo.CreateRoom(ctx, req.Name, req.Location, req.Capacity)
}

func (s *service) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoomMissing) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.GetAllRooms(ctx)
}

func (s *service) DeactivateRoom(ctx context.Context, id int) error {
	err := s.repo.SetRoomActive(ctx, id, false)
	if errors.Is(err, ErrRoomMissing) {
		return ErrRoomNotFound
	}
	return err
}

func (s *service) ActivateRoom(ctx context.Context, id int) error {
	err := s.repo.SetRoomActive(ctx, id, true)
	if errors.Is(err, ErrRoomMissing) {
		return ErrRoomNotFound
	}
	return err
}
