package service

import (
	"context"
	"fmt"

	"studyrooms/internal/repository"
)

// Summary is the payload of the public demo endpoint: entity counts plus a
// small sample of rooms across the catalog.
type Summary struct {
	ModelCounts SummaryCounts `json:"model_counts"`
	SampleRooms []SampleRoom  `json:"sample_rooms"`
}

type SummaryCounts struct {
	Libraries    int64 `json:"libraries"`
	Floors       int64 `json:"floors"`
	Rooms        int64 `json:"rooms"`
	Reservations int64 `json:"reservations"`
}

type SampleRoom struct {
	ID            string `json:"id"`
	Location      string `json:"location"`
	Capacity      int    `json:"capacity"`
	Status        string `json:"status"`
	HasWhiteboard bool   `json:"has_whiteboard"`
	Reservations  int    `json:"reservations"`
}

type StatsService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type statsService struct {
	libraries    repository.LibraryRepository
	floors       repository.FloorRepository
	rooms        repository.RoomRepository
	reservations repository.ReservationRepository
}

func NewStatsService(
	libraries repository.LibraryRepository,
	floors repository.FloorRepository,
	rooms repository.RoomRepository,
	reservations repository.ReservationRepository,
) StatsService {
	return &statsService{
		libraries:    libraries,
		floors:       floors,
		rooms:        rooms,
		reservations: reservations,
	}
}

func (s *statsService) Summary(ctx context.Context) (*Summary, error) {
	counts := SummaryCounts{}
	var err error
	if counts.Libraries, err = s.libraries.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Floors, err = s.floors.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Rooms, err = s.rooms.Count(ctx); err != nil {
		return nil, err
	}
	if counts.Reservations, err = s.reservations.Count(ctx); err != nil {
		return nil, err
	}

	tree, err := s.libraries.ListWithTree(ctx)
	if err != nil {
		return nil, err
	}

	// up to 3 sample rooms per floor
	samples := make([]SampleRoom, 0)
	for li := range tree {
		library := &tree[li]
		for fi := range library.Floors {
			floor := &library.Floors[fi]
			limit := len(floor.Rooms)
			if limit > 3 {
				limit = 3
			}
			for ri := 0; ri < limit; ri++ {
				room := &floor.Rooms[ri]
				samples = append(samples, SampleRoom{
					ID:            room.RoomID,
					Location:      fmt.Sprintf("%s, Floor %d", library.Name, floor.Number),
					Capacity:      room.Capacity,
					Status:        room.Status,
					HasWhiteboard: room.HasWhiteboard,
					Reservations:  len(room.Reservations),
				})
			}
		}
	}

	return &Summary{ModelCounts: counts, SampleRooms: samples}, nil
}
