package service

import (
	"fmt"
	"time"

	"studyrooms/internal/models"
)

// ValidateReservation decides whether a candidate reservation may be saved.
// It is pure: the caller supplies the confirmed reservations currently
// persisted for the room and persists the candidate only on a nil result.
//
// Checks run in order and the first failure wins:
//
//  1. start time must not be in the past
//  2. end time must be after start time
//  3. no overlap with confirmed reservations on the room (only enforced for
//     new candidates or candidates whose status is confirmed; the candidate's
//     own stored state is excluded by id)
//  4. the room itself must be available
//  5. the window must fall within the library's business hours
//  6. attendees must fit the room
//
// Overlap is half-open: a reservation ending at the instant another starts
// does not conflict. Pending holds never block each other; only promotion to
// confirmed forces the conflict scan.
func ValidateReservation(candidate *models.Reservation, existing []models.Reservation, room *models.Room, library *models.Library, now time.Time) *ValidationError {
	if candidate.StartTime.Before(now) {
		return &ValidationError{
			Check:  CheckStartInPast,
			Reason: "reservation start time must be in the future",
		}
	}

	if !candidate.EndTime.After(candidate.StartTime) {
		return &ValidationError{
			Check:  CheckEndNotAfterStart,
			Reason: "reservation end time must be after start time",
		}
	}

	isNew := candidate.ReservationID == ""
	if isNew || candidate.Status == models.ReservationStatusConfirmed {
		for i := range existing {
			other := &existing[i]
			if other.Status != models.ReservationStatusConfirmed {
				continue
			}
			if !isNew && other.ReservationID == candidate.ReservationID {
				continue
			}
			if other.Overlaps(candidate.StartTime, candidate.EndTime) {
				return &ValidationError{
					Check:  CheckTimeConflict,
					Reason: "this room is already reserved during the selected time period",
				}
			}
		}
	}

	if room.Status != models.RoomStatusAvailable {
		return &ValidationError{
			Check:  CheckRoomStatus,
			Reason: "this room is not available for reservations at this time",
		}
	}

	startClock := candidate.StartTime.Format("15:04:05")
	endClock := candidate.EndTime.Format("15:04:05")
	if startClock < library.OpeningTime || endClock > library.ClosingTime {
		return &ValidationError{
			Check: CheckLibraryHours,
			Reason: fmt.Sprintf("reservations must be within library hours (%s - %s)",
				library.OpeningTime, library.ClosingTime),
		}
	}

	if candidate.NumAttendees > room.Capacity {
		return &ValidationError{
			Check:  CheckCapacity,
			Reason: fmt.Sprintf("number of attendees exceeds maximum room capacity (%d)", room.Capacity),
		}
	}

	return nil
}
