package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrooms/internal/models"
)

// MaterialRepository defines data operations for library materials.
type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id int64) error
	// List returns materials, optionally filtered by library.
	List(ctx context.Context, libraryID *int64) ([]models.Material, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *models.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Material{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *materialRepository) List(ctx context.Context, libraryID *int64) ([]models.Material, error) {
	query := r.db.WithContext(ctx).Order("name")
	if libraryID != nil {
		query = query.Where("library_id = ?", *libraryID)
	}

	var materials []models.Material
	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}
