package equipment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrEquipmentMissing    = errors.New("equipment missing")
	ErrRecordMissing       = errors.New("maintenance record missing")
	ErrStatusNotApplicable = errors.New("record is not in the expected status")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEquipment(ctx context.Context, eq *Equipment) error {
	query := `
		INSERT INTO equipment (room_id, name, type, serial_number)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, operational, created_at`

	typ := ""
	if eq.Type != nil {
		typ = *eq.Type
	}
	serial := ""
	if eq.SerialNumber != nil {
		serial = *eq.SerialNumber
	}

	return r.db.QueryRowxContext(ctx, query, eq.RoomID, eq.Name, typ, serial).
		Scan(&eq.ID, &eq.Operational, &eq.CreatedAt)
}

func (r *repository) GetEquipmentByID(ctx context.Context, id int) (*Equipment, error) {
	eq := &Equipment{}
	query := `
		SELECT id, room_id, name, type, serial_number, operational, created_at
		FROM equipment
		WHERE id = $1`

	err := r.db.GetContext(ctx, eq, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentMissing
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *repository) ListEquipmentForRoom(ctx context.Context, roomID int) ([]Equipment, error) {
	query := `
		SELECT id, room_id, name, type, serial_number, operational, created_at
		FROM equipment
		WHERE room_id = $1
		ORDER BY name`

	var items []Equipment
	err := r.db.SelectContext(ctx, &items, query, roomID)
	return items, err
}

func (r *repository) InsertRecord(ctx context.Context, record *MaintenanceRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO maintenance_records (equipment_id, reported_by, issue_description)
		 VALUES ($1, $2, $3)
		 RETURNING id, reported_at, status`,
		record.EquipmentID, record.ReportedBy, record.IssueDescription,
	).Scan(&record.ID, &record.ReportedAt, &record.Status)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE equipment SET operational = FALSE WHERE id = $1`,
		record.EquipmentID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) GetRecordByID(ctx context.Context, id int) (*MaintenanceRecord, error) {
	record := &MaintenanceRecord{}
	query := `
		SELECT id, equipment_id, reported_by, reported_at, resolved_at,
		       status, issue_description, resolution_notes
		FROM maintenance_records
		WHERE id = $1`

	err := r.db.GetContext(ctx, record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordMissing
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *repository) ListRecordsForEquipment(ctx context.Context, equipmentID int) ([]MaintenanceRecord, error) {
	query := `
		SELECT id, equipment_id, reported_by, reported_at, resolved_at,
		       status, issue_description, resolution_notes
		FROM maintenance_records
		WHERE equipment_id = $1
		ORDER BY reported_at DESC`

	var records []MaintenanceRecord
	err := r.db.SelectContext(ctx, &records, query, equipmentID)
	return records, err
}

func (r *repository) UpdateRecordStatus(ctx context.Context, id int, from, to RecordStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE maintenance_records SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStatusNotApplicable
	}
	return nil
}

func (r *repository) ResolveRecord(ctx context.Context, id int, equipmentID int, notes string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE maintenance_records
		 SET status = 'resolved', resolved_at = $1, resolution_notes = NULLIF($2, '')
		 WHERE id = $3 AND status <> 'resolved'`,
		time.Now(), notes, id)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrStatusNotApplicable
	}

	// The equipment is back in service only when no other unresolved
	// records remain.
	var operational bool
	err = tx.QueryRowxContext(ctx,
		`UPDATE equipment
		 SET operational = NOT EXISTS (
		     SELECT 1 FROM maintenance_records
		     WHERE equipment_id = $1 AND status <> 'resolved'
		 )
		 WHERE id = $1
		 RETURNING operational`,
		equipmentID,
	).Scan(&operational)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return operational, nil
}
