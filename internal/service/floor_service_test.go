package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studyrooms/internal/models"
)

func TestFloorService_Create(t *testing.T) {
	floors := new(mockFloorRepo)
	libraries := new(mockLibraryRepo)
	svc := NewFloorService(floors, libraries)

	libraries.On("FindByID", mock.Anything, int64(1)).Return(&models.Library{ID: 1}, nil)
	libID := int64(1)
	floors.On("List", mock.Anything, &libID).Return([]models.Floor{}, nil)
	floors.On("Create", mock.Anything, mock.AnythingOfType("*models.Floor")).Return(nil)

	floor, err := svc.Create(context.Background(), FloorInput{
		LibraryID:   1,
		Number:      2,
		Description: "quiet study area",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, floor.Number)
}

func TestFloorService_Create_UnknownLibrary(t *testing.T) {
	floors := new(mockFloorRepo)
	libraries := new(mockLibraryRepo)
	svc := NewFloorService(floors, libraries)

	libraries.On("FindByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), FloorInput{LibraryID: 404, Number: 1})
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestFloorService_Create_NumberTaken(t *testing.T) {
	floors := new(mockFloorRepo)
	libraries := new(mockLibraryRepo)
	svc := NewFloorService(floors, libraries)

	libraries.On("FindByID", mock.Anything, int64(1)).Return(&models.Library{ID: 1}, nil)
	libID := int64(1)
	floors.On("List", mock.Anything, &libID).Return([]models.Floor{
		{ID: 7, LibraryID: 1, Number: 2},
	}, nil)

	_, err := svc.Create(context.Background(), FloorInput{LibraryID: 1, Number: 2})
	assert.ErrorIs(t, err, ErrFloorNumberTaken)
	floors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Updating a floor without changing its number must not conflict with itself.
func TestFloorService_Update_KeepsOwnNumber(t *testing.T) {
	floors := new(mockFloorRepo)
	libraries := new(mockLibraryRepo)
	svc := NewFloorService(floors, libraries)

	floors.On("FindByID", mock.Anything, int64(7)).Return(&models.Floor{
		ID: 7, LibraryID: 1, Number: 2,
	}, nil)
	libraries.On("FindByID", mock.Anything, int64(1)).Return(&models.Library{ID: 1}, nil)
	libID := int64(1)
	floors.On("List", mock.Anything, &libID).Return([]models.Floor{
		{ID: 7, LibraryID: 1, Number: 2},
	}, nil)
	floors.On("Update", mock.Anything, mock.AnythingOfType("*models.Floor")).Return(nil)

	floor, err := svc.Update(context.Background(), 7, FloorInput{
		LibraryID:   1,
		Number:      2,
		Description: "renovated",
	})
	require.NoError(t, err)
	assert.Equal(t, "renovated", floor.Description)
}
