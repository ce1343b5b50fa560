package service

import "errors"

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrLibraryNotFound     = errors.New("library not found")
	ErrFloorNotFound       = errors.New("floor not found")
	ErrFloorNumberTaken    = errors.New("floor number already taken for this library")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomIDTaken         = errors.New("room id already taken")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Validation check identifiers, used as metric labels.
const (
	CheckStartInPast      = "start_in_past"
	CheckEndNotAfterStart = "end_not_after_start"
	CheckTimeConflict     = "time_conflict"
	CheckRoomStatus       = "room_status"
	CheckLibraryHours     = "library_hours"
	CheckCapacity         = "capacity"
	CheckStatusValue      = "status_value"
	CheckDateFormat       = "date_format"
	CheckHoursOrder       = "hours_order"
)

// ValidationError is a business-rule rejection. It surfaces to clients as a
// single reason string with HTTP 400.
type ValidationError struct {
	Check  string // stable identifier for metrics
	Reason string // human-readable rejection reason
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
