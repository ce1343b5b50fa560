package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"studyrooms/internal/models"
	"studyrooms/internal/repository"
)

// FloorInput carries the writable floor fields.
type FloorInput struct {
	LibraryID   int64
	Number      int
	Description string
	FloorMap    json.RawMessage
}

type FloorService interface {
	List(ctx context.Context, libraryID *int64) ([]models.Floor, error)
	Get(ctx context.Context, id int64) (*models.Floor, error)
	Create(ctx context.Context, input FloorInput) (*models.Floor, error)
	Update(ctx context.Context, id int64, input FloorInput) (*models.Floor, error)
	Delete(ctx context.Context, id int64) error
}

type floorService struct {
	repo      repository.FloorRepository
	libraries repository.LibraryRepository
}

func NewFloorService(repo repository.FloorRepository, libraries repository.LibraryRepository) FloorService {
	return &floorService{repo: repo, libraries: libraries}
}

func (s *floorService) List(ctx context.Context, libraryID *int64) ([]models.Floor, error) {
	return s.repo.List(ctx, libraryID)
}

func (s *floorService) Get(ctx context.Context, id int64) (*models.Floor, error) {
	floor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return floor, nil
}

func (s *floorService) Create(ctx context.Context, input FloorInput) (*models.Floor, error) {
	if _, err := s.libraries.FindByID(ctx, input.LibraryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryNotFound
		}
		return nil, err
	}

	if err := s.checkNumberFree(ctx, input.LibraryID, input.Number, 0); err != nil {
		return nil, err
	}

	floor := &models.Floor{
		LibraryID:   input.LibraryID,
		Number:      input.Number,
		Description: input.Description,
		FloorMap:    input.FloorMap,
	}
	if err := s.repo.Create(ctx, floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *floorService) Update(ctx context.Context, id int64, input FloorInput) (*models.Floor, error) {
	floor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.libraries.FindByID(ctx, input.LibraryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryNotFound
		}
		return nil, err
	}

	if err := s.checkNumberFree(ctx, input.LibraryID, input.Number, floor.ID); err != nil {
		return nil, err
	}

	floor.LibraryID = input.LibraryID
	floor.Number = input.Number
	floor.Description = input.Description
	floor.FloorMap = input.FloorMap

	if err := s.repo.Update(ctx, floor); err != nil {
		return nil, err
	}
	return floor, nil
}

func (s *floorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFloorNotFound
		}
		return err
	}
	return nil
}

// checkNumberFree enforces floor-number uniqueness per library ahead of the
// database constraint, so clients get a clean conflict error.
func (s *floorService) checkNumberFree(ctx context.Context, libraryID int64, number int, selfID int64) error {
	floors, err := s.repo.List(ctx, &libraryID)
	if err != nil {
		return err
	}
	for i := range floors {
		if floors[i].Number == number && floors[i].ID != selfID {
			return ErrFloorNumberTaken
		}
	}
	return nil
}
