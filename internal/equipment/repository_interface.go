package equipment

import "context"

type Repository interface {
	CreateEquipment(ctx context.Context, eq *Equipment) error
	GetEquipmentByID(ctx context.Context, id int) (*Equipment, error)
	ListEquipmentForRoom(ctx context.Context, roomID int) ([]Equipment, error)

	// InsertRecord stores a new maintenance record and marks the equipment
	// non-operational in the same transaction.
	InsertRecord(ctx context.Context, record *MaintenanceRecord) error
	GetRecordByID(ctx context.Context, id int) (*MaintenanceRecord, error)
	ListRecordsForEquipment(ctx context.Context, equipmentID int) ([]MaintenanceRecord, error)
	UpdateRecordStatus(ctx context.Context, id int, from, to RecordStatus) error

	// ResolveRecord closes a record and recomputes the equipment's
	// operational flag from its remaining unresolved records, all in one
	// transaction. It returns the recomputed flag.
	ResolveRecord(ctx context.Context, id int, equipmentID int, notes string) (bool, error)
}
