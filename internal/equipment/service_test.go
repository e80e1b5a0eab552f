package equipment

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

func (m *MockRepository) CreateEquipment(ctx context.Context, eq *Equipment) error {
	args := m.Called(ctx, eq)
	if args.Error(0) == nil {
		eq.ID = 1
		eq.Operational = true
	}
	return args.Error(0)
}

func (m *MockRepository) GetEquipmentByID(ctx context.Context, id int) (*Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Equipment), args.Error(1)
}

func (m *MockRepository) ListEquipmentForRoom(ctx context.Context, roomID int) ([]Equipment, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Equipment), args.Error(1)
}

func (m *MockRepository) InsertRecord(ctx context.Context, record *MaintenanceRecord) error {
	args := m.Called(ctx, record)
	if args.Error(0) == nil {
		record.ID = 1
		record.Status = StatusOpen
	}
	return args.Error(0)
}

func (m *MockRepository) GetRecordByID(ctx context.Context, id int) (*MaintenanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MaintenanceRecord), args.Error(1)
}

func (m *MockRepository) ListRecordsForEquipment(ctx context.Context, equipmentID int) ([]MaintenanceRecord, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MaintenanceRecord), args.Error(1)
}

func (m *MockRepository) UpdateRecordStatus(ctx context.Context, id int, from, to RecordStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockRepository) ResolveRecord(ctx context.Context, id int, equipmentID int, notes string) (bool, error) {
	args := m.Called(ctx, id, equipmentID, notes)
	return args.Bool(0), args.Error(1)
}

func TestService_ReportIssue(t *testing.T) {
	tests := []struct {
		name        string
		equipmentID int
		description string
		setupMock   func(*MockRepository)
		wantErr     error
	}{
		{
			name:        "opens record for operational equipment",
			equipmentID: 1,
			description: "belt slipping",
			setupMock: func(m *MockRepository) {
				m.On("GetEquipmentByID", mock.Anything, 1).Return(&Equipment{ID: 1, Operational: true}, nil)
				m.On("InsertRecord", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:        "equipment not found",
			equipmentID: 99,
			description: "belt slipping",
			setupMock: func(m *MockRepository) {
				m.On("GetEquipmentByID", mock.Anything, 99).Return(nil, ErrEquipmentMissing)
			},
			wantErr: ErrEquipmentNotFound,
		},
		{
			name:        "empty description",
			equipmentID: 1,
			description: "   ",
			setupMock:   func(m *MockRepository) {},
			wantErr:     ErrEmptyDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			record, err := NewService(mockRepo, nil, nil).ReportIssue(context.Background(), tt.equipmentID, 5, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, record)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, record)
				assert.Equal(t, StatusOpen, record.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current RecordStatus
		target  string
		wantErr error
	}{
		{name: "open to in_progress", current: StatusOpen, target: "in_progress"},
		{name: "open to resolved", current: StatusOpen, target: "resolved"},
		{name: "in_progress to resolved", current: StatusInProgress, target: "resolved"},
		{name: "in_progress back to open", current: StatusInProgress, target: "open", wantErr: ErrInvalidTransition},
		{name: "resolved to open", current: StatusResolved, target: "open", wantErr: ErrRecordResolved},
		{name: "resolved to in_progress", current: StatusResolved, target: "in_progress", wantErr: ErrRecordResolved},
		{name: "resolved to resolved", current: StatusResolved, target: "resolved", wantErr: ErrRecordResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, nil, nil)

			record := &MaintenanceRecord{ID: 3, EquipmentID: 1, Status: tt.current}
			mockRepo.On("GetRecordByID", mock.Anything, 3).Return(record, nil)

			if tt.wantErr == nil {
				if tt.target == "resolved" {
					mockRepo.On("ResolveRecord", mock.Anything, 3, 1, "").Return(true, nil)
				} else {
					mockRepo.On("UpdateRecordStatus", mock.Anything, 3, tt.current, RecordStatus(tt.target)).Return(nil)
				}
			}

			updated, err := service.UpdateStatus(context.Background(), 3, UpdateStatusRequest{Status: tt.target})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, updated)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, nil)

	updated, err := service.UpdateStatus(context.Background(), 3, UpdateStatusRequest{Status: "broken"})

	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Nil(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateStatus_RecordNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("GetRecordByID", mock.Anything, 99).Return(nil, ErrRecordMissing)

	updated, err := service.UpdateStatus(context.Background(), 99, UpdateStatusRequest{Status: "resolved"})

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestService_GetMaintenanceHistory(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, nil)

	mockRepo.On("GetEquipmentByID", mock.Anything, 1).Return(&Equipment{ID: 1}, nil)
	mockRepo.On("ListRecordsForEquipment", mock.Anything, 1).Return([]MaintenanceRecord{
		{ID: 1, EquipmentID: 1, Status: StatusResolved},
		{ID: 2, EquipmentID: 1, Status: StatusOpen},
	}, nil)

	records, err := service.GetMaintenanceHistory(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	mockRepo.AssertExpectations(t)
}
