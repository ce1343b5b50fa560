package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyrooms/internal/models"
)

type mockFloorRepo struct {
	mock.Mock
}

func (m *mockFloorRepo) Create(ctx context.Context, floor *models.Floor) error {
	args := m.Called(ctx, floor)
	return args.Error(0)
}

func (m *mockFloorRepo) Update(ctx context.Context, floor *models.Floor) error {
	args := m.Called(ctx, floor)
	return args.Error(0)
}

func (m *mockFloorRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFloorRepo) FindByID(ctx context.Context, id int64) (*models.Floor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Floor), args.Error(1)
}

func (m *mockFloorRepo) List(ctx context.Context, libraryID *int64) ([]models.Floor, error) {
	args := m.Called(ctx, libraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Floor), args.Error(1)
}

func (m *mockFloorRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestRoomService(rooms *mockRoomRepo, floors *mockFloorRepo, reservations *mockReservationRepo) *roomService {
	return &roomService{
		repo:         rooms,
		floors:       floors,
		reservations: reservations,
		now:          func() time.Time { return testNow },
	}
}

func TestRoomService_Create(t *testing.T) {
	rooms := new(mockRoomRepo)
	floors := new(mockFloorRepo)
	svc := newTestRoomService(rooms, floors, new(mockReservationRepo))

	floors.On("FindByID", mock.Anything, int64(1)).Return(&models.Floor{ID: 1}, nil)
	rooms.On("FindByRoomID", mock.Anything, "STR101").Return(nil, gorm.ErrRecordNotFound)
	rooms.On("Create", mock.Anything, mock.AnythingOfType("*models.Room")).Return(nil)

	room, err := svc.Create(context.Background(), RoomInput{
		RoomID:   "STR101",
		FloorID:  1,
		Capacity: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoomStatusAvailable, room.Status, "status defaults to available")
}

func TestRoomService_Create_DuplicateRoomID(t *testing.T) {
	rooms := new(mockRoomRepo)
	floors := new(mockFloorRepo)
	svc := newTestRoomService(rooms, floors, new(mockReservationRepo))

	floors.On("FindByID", mock.Anything, int64(1)).Return(&models.Floor{ID: 1}, nil)
	rooms.On("FindByRoomID", mock.Anything, "STR101").Return(&models.Room{RoomID: "STR101"}, nil)

	_, err := svc.Create(context.Background(), RoomInput{
		RoomID:   "STR101",
		FloorID:  1,
		Capacity: 4,
	})
	assert.ErrorIs(t, err, ErrRoomIDTaken)
}

func TestRoomService_List_RejectsBadStatus(t *testing.T) {
	svc := newTestRoomService(new(mockRoomRepo), new(mockFloorRepo), new(mockReservationRepo))

	_, err := svc.List(context.Background(), nil, "haunted")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CheckStatusValue, verr.Check)
}

func TestRoomService_CheckAvailability(t *testing.T) {
	rooms := new(mockRoomRepo)
	reservations := new(mockReservationRepo)
	svc := newTestRoomService(rooms, new(mockFloorRepo), reservations)

	rooms.On("FindByRoomID", mock.Anything, "STR101").Return(wiredRoom(), nil)
	dayReservations := []models.Reservation{
		{ReservationID: "res-a", Status: models.ReservationStatusPending},
		{ReservationID: "res-b", Status: models.ReservationStatusConfirmed},
	}
	reservations.On("ListForRoomBetween", mock.Anything, int64(1),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
		[]string{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		Return(dayReservations, nil)

	availability, err := svc.CheckAvailability(context.Background(), "STR101", "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", availability.Date)
	assert.True(t, availability.IsAvailable)
	assert.Len(t, availability.Reservations, 2)
}

// A fully booked day still reports is_available=true; the flag only mirrors
// the room's own status.
func TestRoomService_CheckAvailability_MaintenanceRoom(t *testing.T) {
	rooms := new(mockRoomRepo)
	reservations := new(mockReservationRepo)
	svc := newTestRoomService(rooms, new(mockFloorRepo), reservations)

	room := wiredRoom()
	room.Status = models.RoomStatusMaintenance
	rooms.On("FindByRoomID", mock.Anything, "STR101").Return(room, nil)
	reservations.On("ListForRoomBetween", mock.Anything, int64(1),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
		mock.Anything).Return([]models.Reservation{}, nil)

	availability, err := svc.CheckAvailability(context.Background(), "STR101", "")
	require.NoError(t, err)

	assert.False(t, availability.IsAvailable)
	assert.Equal(t, testNow.Format("2006-01-02"), availability.Date, "empty date defaults to today")
}

func TestRoomService_CheckAvailability_BadDate(t *testing.T) {
	rooms := new(mockRoomRepo)
	svc := newTestRoomService(rooms, new(mockFloorRepo), new(mockReservationRepo))

	rooms.On("FindByRoomID", mock.Anything, "STR101").Return(wiredRoom(), nil)

	for _, bad := range []string{"02-03-2026", "2026/03/02", "tomorrow"} {
		_, err := svc.CheckAvailability(context.Background(), "STR101", bad)
		verr, ok := AsValidationError(err)
		require.True(t, ok, "date %q should be rejected", bad)
		assert.Equal(t, CheckDateFormat, verr.Check)
	}
}

func TestRoomService_CheckAvailability_UnknownRoom(t *testing.T) {
	rooms := new(mockRoomRepo)
	svc := newTestRoomService(rooms, new(mockFloorRepo), new(mockReservationRepo))

	rooms.On("FindByRoomID", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CheckAvailability(context.Background(), "NOPE", "2026-03-02")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
