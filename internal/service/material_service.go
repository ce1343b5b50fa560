package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studyrooms/internal/models"
	"studyrooms/internal/repository"
)

// MaterialInput carries the writable material fields.
type MaterialInput struct {
	LibraryID int64
	Name      string
}

type MaterialService interface {
	List(ctx context.Context, libraryID *int64) ([]models.Material, error)
	Create(ctx context.Context, input MaterialInput) (*models.Material, error)
	Delete(ctx context.Context, id int64) error
}

type materialService struct {
	repo      repository.MaterialRepository
	libraries repository.LibraryRepository
}

func NewMaterialService(repo repository.MaterialRepository, libraries repository.LibraryRepository) MaterialService {
	return &materialService{repo: repo, libraries: libraries}
}

func (s *materialService) List(ctx context.Context, libraryID *int64) ([]models.Material, error) {
	return s.repo.List(ctx, libraryID)
}

func (s *materialService) Create(ctx context.Context, input MaterialInput) (*models.Material, error) {
	if _, err := s.libraries.FindByID(ctx, input.LibraryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryNotFound
		}
		return nil, err
	}

	material := &models.Material{
		LibraryID: input.LibraryID,
		Name:      input.Name,
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *materialService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	return nil
}
