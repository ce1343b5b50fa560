package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrooms/internal/models"
)

// RoomRepository defines data operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Room, error)
	// FindByRoomID looks a room up by its human-readable identifier and
	// preloads the floor and library, which reservation validation needs
	// for the business-hours check.
	FindByRoomID(ctx context.Context, roomID string) (*models.Room, error)
	// List returns rooms, optionally filtered by floor and status.
	List(ctx context.Context, floorID *int64, status string) ([]models.Room, error)
	Count(ctx context.Context) (int64, error)
}

// roomRepository is the GORM implementation of RoomRepository.
type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) Update(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Library").
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByRoomID(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).
		Preload("Floor").
		Preload("Floor.Library").
		Where("room_id = ?", roomID).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) List(ctx context.Context, floorID *int64, status string) ([]models.Room, error) {
	query := r.db.WithContext(ctx).Order("room_id")
	if floorID != nil {
		query = query.Where("floor_id = ?", *floorID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&count).Error
	return count, err
}
