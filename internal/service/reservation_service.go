package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"studyrooms/internal/cache"
	"studyrooms/internal/metrics"
	"studyrooms/internal/models"
	"studyrooms/internal/repository"
)

// ReservationInput is the full set of writable reservation fields, used for
// create and full update. RoomID is the human-readable room identifier.
type ReservationInput struct {
	RoomID       string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Purpose      string
	NumAttendees int
	Notes        string
}

// ReservationPatch is a partial update; nil fields are left unchanged.
type ReservationPatch struct {
	RoomID       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Status       *string
	Purpose      *string
	NumAttendees *int
	Notes        *string
}

// ReservationService owns reservation lifecycle and conflict validation.
// Callers are identified by user id plus a staff flag; non-staff callers only
// ever see their own reservations, and anything outside their scope behaves
// as if it did not exist.
type ReservationService interface {
	Create(ctx context.Context, userID string, input ReservationInput) (*models.Reservation, error)
	List(ctx context.Context, callerID string, staff bool) ([]models.Reservation, error)
	Get(ctx context.Context, callerID string, staff bool, reservationID string) (*models.Reservation, error)
	Update(ctx context.Context, callerID string, staff bool, reservationID string, input ReservationInput) (*models.Reservation, error)
	Patch(ctx context.Context, callerID string, staff bool, reservationID string, patch ReservationPatch) (*models.Reservation, error)
	Delete(ctx context.Context, callerID string, staff bool, reservationID string) error
}

type reservationService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	cache        *cache.Client

	// roomLocks serializes the read-validate-write sequence per room so two
	// concurrent confirmations cannot both pass the overlap scan. Covers a
	// single process; across instances the DB check constraint still holds.
	roomLocks sync.Map // room id -> *sync.Mutex

	now func() time.Time
}

func NewReservationService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	cacheClient *cache.Client,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		rooms:        rooms,
		cache:        cacheClient,
		now:          time.Now,
	}
}

func (s *reservationService) lockRoom(roomID int64) *sync.Mutex {
	mu, _ := s.roomLocks.LoadOrStore(roomID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *reservationService) Create(ctx context.Context, userID string, input ReservationInput) (*models.Reservation, error) {
	room, err := s.findRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ReservationStatusPending
	}
	if !models.ValidReservationStatus(status) {
		return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid reservation status"}
	}

	attendees := input.NumAttendees
	if attendees <= 0 {
		attendees = 1
	}

	candidate := &models.Reservation{
		RoomID:       room.ID,
		UserID:       userID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       status,
		Purpose:      input.Purpose,
		NumAttendees: attendees,
		Notes:        input.Notes,
	}

	if err := s.saveValidated(ctx, candidate, room, true); err != nil {
		return nil, err
	}

	s.cache.InvalidateRoom(ctx, room.RoomID)
	s.cache.InvalidateSummary(ctx)
	candidate.Room = room
	return candidate, nil
}

func (s *reservationService) List(ctx context.Context, callerID string, staff bool) ([]models.Reservation, error) {
	if staff {
		return s.reservations.ListAll(ctx)
	}
	return s.reservations.ListForUser(ctx, callerID)
}

func (s *reservationService) Get(ctx context.Context, callerID string, staff bool, reservationID string) (*models.Reservation, error) {
	return s.findScoped(ctx, callerID, staff, reservationID)
}

func (s *reservationService) Update(ctx context.Context, callerID string, staff bool, reservationID string, input ReservationInput) (*models.Reservation, error) {
	stored, err := s.findScoped(ctx, callerID, staff, reservationID)
	if err != nil {
		return nil, err
	}

	room, err := s.findRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if !models.ValidReservationStatus(input.Status) {
		return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid reservation status"}
	}

	attendees := input.NumAttendees
	if attendees <= 0 {
		attendees = 1
	}

	previousRoom := ""
	if stored.Room != nil && stored.Room.RoomID != room.RoomID {
		previousRoom = stored.Room.RoomID
	}

	candidate := *stored
	candidate.RoomID = room.ID
	candidate.StartTime = input.StartTime
	candidate.EndTime = input.EndTime
	candidate.Status = input.Status
	candidate.Purpose = input.Purpose
	candidate.NumAttendees = attendees
	candidate.Notes = input.Notes
	candidate.Room = nil
	candidate.User = nil

	if err := s.saveValidated(ctx, &candidate, room, false); err != nil {
		return nil, err
	}

	s.cache.InvalidateRoom(ctx, room.RoomID)
	if previousRoom != "" {
		s.cache.InvalidateRoom(ctx, previousRoom)
	}
	s.cache.InvalidateSummary(ctx)

	candidate.Room = room
	candidate.User = stored.User
	return &candidate, nil
}

func (s *reservationService) Patch(ctx context.Context, callerID string, staff bool, reservationID string, patch ReservationPatch) (*models.Reservation, error) {
	stored, err := s.findScoped(ctx, callerID, staff, reservationID)
	if err != nil {
		return nil, err
	}

	// Resolve the target room first; the patch may move the reservation.
	roomID := ""
	if patch.RoomID != nil {
		roomID = *patch.RoomID
	} else if stored.Room != nil {
		roomID = stored.Room.RoomID
	}
	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	candidate := *stored
	candidate.RoomID = room.ID
	candidate.Room = nil
	candidate.User = nil
	if patch.StartTime != nil {
		candidate.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		candidate.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		if !models.ValidReservationStatus(*patch.Status) {
			return nil, &ValidationError{Check: CheckStatusValue, Reason: "invalid reservation status"}
		}
		candidate.Status = *patch.Status
	}
	if patch.Purpose != nil {
		candidate.Purpose = *patch.Purpose
	}
	if patch.NumAttendees != nil {
		candidate.NumAttendees = *patch.NumAttendees
	}
	if patch.Notes != nil {
		candidate.Notes = *patch.Notes
	}

	if err := s.saveValidated(ctx, &candidate, room, false); err != nil {
		return nil, err
	}

	s.cache.InvalidateRoom(ctx, room.RoomID)
	if stored.Room != nil && stored.Room.RoomID != room.RoomID {
		s.cache.InvalidateRoom(ctx, stored.Room.RoomID)
	}
	s.cache.InvalidateSummary(ctx)

	candidate.Room = room
	candidate.User = stored.User
	return &candidate, nil
}

func (s *reservationService) Delete(ctx context.Context, callerID string, staff bool, reservationID string) error {
	stored, err := s.findScoped(ctx, callerID, staff, reservationID)
	if err != nil {
		return err
	}

	if err := s.reservations.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	if stored.Room != nil {
		s.cache.InvalidateRoom(ctx, stored.Room.RoomID)
	}
	s.cache.InvalidateSummary(ctx)
	return nil
}

// saveValidated runs the conflict validation and the write inside a per-room
// lock and a single transaction.
func (s *reservationService) saveValidated(ctx context.Context, candidate *models.Reservation, room *models.Room, isCreate bool) error {
	library := room.Floor.Library

	mu := s.lockRoom(room.ID)
	mu.Lock()
	defer mu.Unlock()

	return s.reservations.Transaction(ctx, func(tx repository.ReservationRepository) error {
		existing, err := tx.FindConfirmedForRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		if verr := ValidateReservation(candidate, existing, room, library, s.now()); verr != nil {
			metrics.IncRejection(verr.Check)
			return verr
		}
		if isCreate {
			return tx.Create(ctx, candidate)
		}
		return tx.Update(ctx, candidate)
	})
}

func (s *reservationService) findRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.rooms.FindByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// findScoped fetches a reservation and applies ownership scoping: non-staff
// callers get a not-found for anything that is not theirs.
func (s *reservationService) findScoped(ctx context.Context, callerID string, staff bool, reservationID string) (*models.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !staff && reservation.UserID != callerID {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}
