package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrooms/internal/models"
)

// LibraryRepository defines data operations for libraries.
type LibraryRepository interface {
	Create(ctx context.Context, library *models.Library) error
	Update(ctx context.Context, library *models.Library) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Library, error)
	List(ctx context.Context) ([]models.Library, error)
	// ListWithTree loads libraries with floors and rooms preloaded, for the
	// catalog summary endpoint.
	ListWithTree(ctx context.Context) ([]models.Library, error)
	Count(ctx context.Context) (int64, error)
}

// libraryRepository is the GORM implementation of LibraryRepository.
type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Create(ctx context.Context, library *models.Library) error {
	return r.db.WithContext(ctx).Create(library).Error
}

func (r *libraryRepository) Update(ctx context.Context, library *models.Library) error {
	return r.db.WithContext(ctx).Save(library).Error
}

func (r *libraryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Library{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *libraryRepository) FindByID(ctx context.Context, id int64) (*models.Library, error) {
	var library models.Library
	if err := r.db.WithContext(ctx).First(&library, id).Error; err != nil {
		return nil, err
	}
	return &library, nil
}

func (r *libraryRepository) List(ctx context.Context) ([]models.Library, error) {
	var libraries []models.Library
	if err := r.db.WithContext(ctx).Order("name").Find(&libraries).Error; err != nil {
		return nil, err
	}
	return libraries, nil
}

func (r *libraryRepository) ListWithTree(ctx context.Context) ([]models.Library, error) {
	var libraries []models.Library
	if err := r.db.WithContext(ctx).
		Preload("Floors", func(db *gorm.DB) *gorm.DB { return db.Order("floors.number") }).
		Preload("Floors.Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.room_id") }).
		Preload("Floors.Rooms.Reservations").
		Order("name").
		Find(&libraries).Error; err != nil {
		return nil, err
	}
	return libraries, nil
}

func (r *libraryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Library{}).Count(&count).Error
	return count, err
}
