package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyrooms/internal/dto"
	"studyrooms/internal/models"
	"studyrooms/internal/service"
)

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) Create(ctx context.Context, userID string, input service.ReservationInput) (*models.Reservation, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockReservationService) List(ctx context.Context, callerID string, staff bool) ([]models.Reservation, error) {
	args := m.Called(ctx, callerID, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockReservationService) Get(ctx context.Context, callerID string, staff bool, reservationID string) (*models.Reservation, error) {
	args := m.Called(ctx, callerID, staff, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockReservationService) Update(ctx context.Context, callerID string, staff bool, reservationID string, input service.ReservationInput) (*models.Reservation, error) {
	args := m.Called(ctx, callerID, staff, reservationID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockReservationService) Patch(ctx context.Context, callerID string, staff bool, reservationID string, patch service.ReservationPatch) (*models.Reservation, error) {
	args := m.Called(ctx, callerID, staff, reservationID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockReservationService) Delete(ctx context.Context, callerID string, staff bool, reservationID string) error {
	args := m.Called(ctx, callerID, staff, reservationID)
	return args.Error(0)
}

// fakeAuth plants a caller identity the way AuthMiddleware would.
func fakeAuth(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newReservationRouter(svc service.ReservationService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReservationHandler(svc)
	h.RegisterRoutes(r.Group("/reservations"), fakeAuth(userID, role))
	return r
}

func reservationStart() time.Time {
	return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
}

func TestReservationHandler_Create_AttachesCaller(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	start := reservationStart()
	end := start.Add(time.Hour)
	svc.On("Create", mock.Anything, "user-1", mock.MatchedBy(func(input service.ReservationInput) bool {
		return input.RoomID == "STR101" && input.StartTime.Equal(start) && input.EndTime.Equal(end)
	})).Return(&models.Reservation{
		ReservationID: "res-new",
		UserID:        "user-1",
		StartTime:     start,
		EndTime:       end,
		Status:        models.ReservationStatusPending,
		NumAttendees:  2,
		Room:          &models.Room{ID: 1, RoomID: "STR101"},
	}, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Room:         "STR101",
		StartTime:    start,
		EndTime:      end,
		NumAttendees: 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "res-new", resp.ReservationID)
	assert.Equal(t, "user-1", resp.User)
	assert.Equal(t, "STR101", resp.RoomID)
	svc.AssertExpectations(t)
}

func TestReservationHandler_Create_ValidationRejection(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	svc.On("Create", mock.Anything, "user-1", mock.Anything).
		Return(nil, &service.ValidationError{
			Check:  service.CheckTimeConflict,
			Reason: "this room is already reserved during the selected time period",
		})

	start := reservationStart()
	body, _ := json.Marshal(dto.CreateReservationRequest{
		Room:      "STR101",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already reserved during the selected time period")
}

func TestReservationHandler_Create_MissingFields(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader([]byte(`{"room":"STR101"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestReservationHandler_List_PassesCallerScope(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	svc.On("List", mock.Anything, "user-1", false).Return([]models.Reservation{
		{ReservationID: "res-mine", UserID: "user-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Items, 1)
}

func TestReservationHandler_List_StaffSeesAll(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "staff-1", models.RoleStaff)

	svc.On("List", mock.Anything, "staff-1", true).Return([]models.Reservation{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertCalled(t, "List", mock.Anything, "staff-1", true)
}

func TestReservationHandler_Get_NotFound(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	svc.On("Get", mock.Anything, "user-1", false, "res-other").
		Return(nil, service.ErrReservationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/reservations/res-other", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationHandler_Patch(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	svc.On("Patch", mock.Anything, "user-1", false, "res-mine",
		mock.MatchedBy(func(patch service.ReservationPatch) bool {
			return patch.Status != nil && *patch.Status == models.ReservationStatusCancelled &&
				patch.RoomID == nil && patch.StartTime == nil
		})).Return(&models.Reservation{
		ReservationID: "res-mine",
		UserID:        "user-1",
		Status:        models.ReservationStatusCancelled,
	}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/reservations/res-mine",
		bytes.NewReader([]byte(`{"status":"cancelled"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
}

func TestReservationHandler_Delete(t *testing.T) {
	svc := new(mockReservationService)
	router := newReservationRouter(svc, "user-1", models.RoleUser)

	svc.On("Delete", mock.Anything, "user-1", false, "res-mine").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/reservations/res-mine", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
