package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studyrooms/internal/models"
)

// ReservationRepository defines data operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, reservationID string) error
	FindByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	// ListForUser returns a user's reservations, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// ListAll returns every reservation, newest first. Staff only.
	ListAll(ctx context.Context) ([]models.Reservation, error)
	// FindConfirmedForRoom returns all confirmed reservations on a room,
	// the input set for conflict validation.
	FindConfirmedForRoom(ctx context.Context, roomID int64) ([]models.Reservation, error)
	// ListForRoomBetween returns reservations on a room whose start_time
	// falls in [from, to) with one of the given statuses, ordered by
	// start_time ascending.
	ListForRoomBetween(ctx context.Context, roomID int64, from, to time.Time, statuses []string) ([]models.Reservation, error)
	Count(ctx context.Context) (int64, error)
	// Transaction runs fn against a repository bound to a single database
	// transaction.
	Transaction(ctx context.Context, fn func(ReservationRepository) error) error
}

// reservationRepository is the GORM implementation of ReservationRepository.
type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) Delete(ctx context.Context, reservationID string) error {
	result := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Delete(&models.Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Where("reservation_id = ?", reservationID).
		First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) ListForUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Order("start_time DESC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindConfirmedForRoom(ctx context.Context, roomID int64) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("room_id = ? AND status = ?", roomID, models.ReservationStatusConfirmed).
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) ListForRoomBetween(ctx context.Context, roomID int64, from, to time.Time, statuses []string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Room").
		Preload("User").
		Where("room_id = ? AND start_time >= ? AND start_time < ? AND status IN ?", roomID, from, to, statuses).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&count).Error
	return count, err
}

func (r *reservationRepository) Transaction(ctx context.Context, fn func(ReservationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reservationRepository{db: tx})
	})
}
