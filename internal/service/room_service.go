package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"studyrooms/internal/models"
	"studyrooms/internal/repository"
)

// RoomInput carries the writable room fields.
type RoomInput struct {
	RoomID        string
	FloorID       int64
	Capacity      int
	HasWhiteboard bool
	HasMonitor    bool
	HasWindow     bool
	Status        string
	PositionX     *float64
	PositionY     *float64
	Width         *float64
	Height        *float64
}

// Availability is the result of an availability query for one room and day.
// IsAvailable reflects only the room's own status; a fully booked day still
// reports true, and callers must cross-reference the reservation list.
type Availability struct {
	Room         *models.Room
	Date         string
	IsAvailable  bool
	Reservations []models.Reservation
}

type RoomService interface {
	List(ctx context.Context, floorID *int64, status string) ([]models.Room, error)
	Get(ctx context.Context, roomID string) (*models.Room, error)
	Create(ctx context.Context, input RoomInput) (*models.Room, error)
	Update(ctx context.Context, roomID string, input RoomInput) (*models.Room, error)
	Delete(ctx context.Context, roomID string) error
	// CheckAvailability reports a room's bookability and the pending and
	// confirmed reservations starting on the given date. An empty date
	// means today in the server's local calendar; otherwise the date must
	// be a YYYY-MM-DD literal.
	CheckAvailability(ctx context.Context, roomID, date string) (*Availability, error)
}

type roomService struct {
	repo         repository.RoomRepository
	floors       repository.FloorRepository
	reservations repository.ReservationRepository
	now          func() time.Time
}

func NewRoomService(
	repo repository.RoomRepository,
	floors repository.FloorRepository,
	reservations repository.ReservationRepository,
) RoomService {
	return &roomService{
		repo:         repo,
		floors:       floors,
		reservations: reservations,
		now:          time.Now,
	}
}

func (s *roomService) List(ctx context.Context, floorID *int64, status string) ([]models.Room, error) {
	if status != "" && !models.ValidRoomStatus(status) {
		return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid room status"}
	}
	return s.repo.List(ctx, floorID, status)
}

func (s *roomService) Get(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.repo.FindByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *roomService) Create(ctx context.Context, input RoomInput) (*models.Room, error) {
	if _, err := s.floors.FindByID(ctx, input.FloorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(status) {
		return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid room status"}
	}

	if _, err := s.repo.FindByRoomID(ctx, input.RoomID); err == nil {
		return nil, ErrRoomIDTaken
	}

	room := &models.Room{
		RoomID:        input.RoomID,
		FloorID:       input.FloorID,
		Capacity:      input.Capacity,
		HasWhiteboard: input.HasWhiteboard,
		HasMonitor:    input.HasMonitor,
		HasWindow:     input.HasWindow,
		Status:        status,
		PositionX:     input.PositionX,
		PositionY:     input.PositionY,
		Width:         input.Width,
		Height:        input.Height,
	}
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) Update(ctx context.Context, roomID string, input RoomInput) (*models.Room, error) {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if _, err := s.floors.FindByID(ctx, input.FloorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}

	if !models.ValidRoomStatus(input.Status) {
		return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid room status"}
	}

	if input.RoomID != room.RoomID {
		if _, err := s.repo.FindByRoomID(ctx, input.RoomID); err == nil {
			return nil, ErrRoomIDTaken
		}
	}

	room.RoomID = input.RoomID
	room.FloorID = input.FloorID
	room.Capacity = input.Capacity
	room.HasWhiteboard = input.HasWhiteboard
	room.HasMonitor = input.HasMonitor
	room.HasWindow = input.HasWindow
	room.Status = input.Status
	room.PositionX = input.PositionX
	room.PositionY = input.PositionY
	room.Width = input.Width
	room.Height = input.Height
	room.Floor = nil

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, roomID string) error {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, room.ID)
}

func (s *roomService) CheckAvailability(ctx context.Context, roomID, date string) (*Availability, error) {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	day := s.now()
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, &ValidationError{Check: CheckDateFormat, Reason: "invalid date format, use YYYY-MM-DD"}
		}
		day = parsed
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1)

	reservations, err := s.reservations.ListForRoomBetween(ctx, room.ID, from, to,
		[]string{models.ReservationStatusPending, models.ReservationStatusConfirmed})
	if err != nil {
		return nil, err
	}

	return &Availability{
		Room:         room,
		Date:         from.Format("2006-01-02"),
		IsAvailable:  room.Status == models.RoomStatusAvailable,
		Reservations: reservations,
	}, nil
}
