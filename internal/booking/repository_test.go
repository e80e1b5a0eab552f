package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dbx := sqlx.NewDb(db, "sqlmock")
	return NewRepository(dbx), mock, func() { db.Close() }
}

func bookingColumns() []string {
	return []string{
		"id", "room_id", "trainer_id", "created_by", "kind", "name", "description",
		"start_time", "end_time", "capacity", "status", "created_at",
	}
}

func TestCreateBooking(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	start := time.Now()
	end := start.Add(time.Hour)

	mock.ExpectQuery(`INSERT INTO bookings.*`).
		WithArgs(1, 7, 2, KindClass, "Morning Yoga", nil, start, end, 10).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, 1, 7, 2, "class", "Morning Yoga", nil, start, end, 10, "scheduled", time.Now()))

	b := &Booking{
		RoomID: 1, TrainerID: 7, CreatedBy: 2, Kind: KindClass,
		Name: "Morning Yoga", StartTime: start, EndTime: end, Capacity: 10,
	}
	created, err := repo.CreateBooking(context.Background(), b)

	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, StatusScheduled, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveBookingsForRoom(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	start := time.Now()
	end := start.Add(time.Hour)

	mock.ExpectQuery(`SELECT id, room_id.*FROM bookings.*WHERE room_id = \$1 AND status <> 'cancelled'.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, 1, 7, 2, "class", "Yoga", nil, start, end, 10, "scheduled", time.Now()).
			AddRow(2, 1, 8, 2, "personal", "PT", nil, end, end.Add(time.Hour), 1, "completed", time.Now()))

	bookings, err := repo.ListActiveBookingsForRoom(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE bookings.*SET status = \$1.*WHERE id = \$2 AND status = \$3`).
		WithArgs(StatusCancelled, 1, StatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBookingStatus(context.Background(), 1, StatusScheduled, StatusCancelled)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookingStatus_NotInExpectedStatus(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE bookings.*SET status = \$1.*WHERE id = \$2 AND status = \$3`).
		WithArgs(StatusCancelled, 1, StatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBookingStatus(context.Background(), 1, StatusScheduled, StatusCancelled)

	assert.ErrorIs(t, err, ErrStatusNotApplicable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActiveRegistrations(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\).*FROM class_registrations.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveRegistrations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRegistration(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery(`INSERT INTO class_registrations.*`).
		WithArgs(1, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "member_id", "status", "created_at"}).
			AddRow(1, 1, 5, "registered", time.Now()))

	reg, err := repo.CreateRegistration(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, "registered", reg.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRegistration_NotRegistered(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE class_registrations.*SET status = 'cancelled'.*`).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CancelRegistration(context.Background(), 1, 5)

	assert.ErrorIs(t, err, ErrRegistrationMissing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
