package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrooms/internal/models"
)

// FloorRepository defines data operations for floors.
type FloorRepository interface {
	Create(ctx context.Context, floor *models.Floor) error
	Update(ctx context.Context, floor *models.Floor) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Floor, error)
	// List returns all floors, optionally filtered by library.
	List(ctx context.Context, libraryID *int64) ([]models.Floor, error)
	Count(ctx context.Context) (int64, error)
}

// floorRepository is the GORM implementation of FloorRepository.
type floorRepository struct {
	db *gorm.DB
}

func NewFloorRepository(db *gorm.DB) FloorRepository {
	return &floorRepository{db: db}
}

func (r *floorRepository) Create(ctx context.Context, floor *models.Floor) error {
	return r.db.WithContext(ctx).Create(floor).Error
}

func (r *floorRepository) Update(ctx context.Context, floor *models.Floor) error {
	return r.db.WithContext(ctx).Save(floor).Error
}

func (r *floorRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Floor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *floorRepository) FindByID(ctx context.Context, id int64) (*models.Floor, error) {
	var floor models.Floor
	if err := r.db.WithContext(ctx).First(&floor, id).Error; err != nil {
		return nil, err
	}
	return &floor, nil
}

func (r *floorRepository) List(ctx context.Context, libraryID *int64) ([]models.Floor, error) {
	query := r.db.WithContext(ctx).Order("library_id, number")
	if libraryID != nil {
		query = query.Where("library_id = ?", *libraryID)
	}

	var floors []models.Floor
	if err := query.Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

func (r *floorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Floor{}).Count(&count).Error
	return count, err
}
