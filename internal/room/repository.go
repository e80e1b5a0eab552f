package room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrRoomMissing = errors.New("room not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRoom(ctx context.Context, name, location string, capacity int) (*Room, error) {
	query := `
		INSERT INTO rooms (name, location, capacity)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, name, location, capacity, active, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, location, capacity)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetRoomByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT id, name, location, capacity, active, created_at
		FROM rooms
		WHERE id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomMissing
		}
		return nil, err
	}

	return &room, nil
}

func (r *repository) GetAllRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, name, location, capacity, active, created_at
		FROM rooms
		ORDER BY name
	`

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) SetRoomActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE rooms SET active = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRoomMissing
	}

	return nil
}
