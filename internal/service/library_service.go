package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"studyrooms/internal/models"
	"studyrooms/internal/repository"
)

// LibraryInput carries the writable library fields. Opening and closing
// times accept "HH:MM" or "HH:MM:SS" and are normalized before storage.
type LibraryInput struct {
	Name        string
	Location    string
	Description string
	OpeningTime string
	ClosingTime string
}

type LibraryService interface {
	List(ctx context.Context) ([]models.Library, error)
	Get(ctx context.Context, id int64) (*models.Library, error)
	Create(ctx context.Context, input LibraryInput) (*models.Library, error)
	Update(ctx context.Context, id int64, input LibraryInput) (*models.Library, error)
	Delete(ctx context.Context, id int64) error
}

type libraryService struct {
	repo repository.LibraryRepository
}

func NewLibraryService(repo repository.LibraryRepository) LibraryService {
	return &libraryService{repo: repo}
}

func (s *libraryService) List(ctx context.Context) ([]models.Library, error) {
	return s.repo.List(ctx)
}

func (s *libraryService) Get(ctx context.Context, id int64) (*models.Library, error) {
	library, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLibraryNotFound
		}
		return nil, err
	}
	return library, nil
}

func (s *libraryService) Create(ctx context.Context, input LibraryInput) (*models.Library, error) {
	opening, closing, err := normalizeHours(input.OpeningTime, input.ClosingTime)
	if err != nil {
		return nil, err
	}

	library := &models.Library{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		OpeningTime: opening,
		ClosingTime: closing,
	}
	if err := s.repo.Create(ctx, library); err != nil {
		return nil, err
	}
	return library, nil
}

func (s *libraryService) Update(ctx context.Context, id int64, input LibraryInput) (*models.Library, error) {
	library, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	opening, closing, err := normalizeHours(input.OpeningTime, input.ClosingTime)
	if err != nil {
		return nil, err
	}

	library.Name = input.Name
	library.Location = input.Location
	library.Description = input.Description
	library.OpeningTime = opening
	library.ClosingTime = closing

	if err := s.repo.Update(ctx, library); err != nil {
		return nil, err
	}
	return library, nil
}

func (s *libraryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLibraryNotFound
		}
		return err
	}
	return nil
}

// normalizeHours parses both business-hour fields and enforces that the
// library opens before it closes.
func normalizeHours(openingTime, closingTime string) (string, string, error) {
	opening, err := parseClock(openingTime)
	if err != nil {
		return "", "", &ValidationError{Check: CheckHoursOrder, Reason: "invalid opening time, use HH:MM or HH:MM:SS"}
	}
	closing, err := parseClock(closingTime)
	if err != nil {
		return "", "", &ValidationError{Check: CheckHoursOrder, Reason: "invalid closing time, use HH:MM or HH:MM:SS"}
	}
	if opening >= closing {
		return "", "", &ValidationError{Check: CheckHoursOrder, Reason: "opening time must be before closing time"}
	}
	return opening, closing, nil
}

func parseClock(value string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q", value)
}
