package booking

import (
	"net/http"
	"time"

	"github.com/JadissEL/table-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrTableNotFound     = apperror.New(http.StatusNotFound, "table not found")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "table already booked for this time period")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrInvalidPartySize  = apperror.New(http.StatusBadRequest, "party size must be between 1 and 12")
	ErrPurposeRequired   = apperror.New(http.StatusBadRequest, "purpose is required")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusBadRequest, "illegal status transition")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")

	// ErrAvailabilityUpdate is returned when the availability flag write fails
	// after the booking row was inserted and the insert has been rolled back.
	ErrAvailabilityUpdate = apperror.New(http.StatusInternalServerError, "failed to update table availability; booking rolled back")

	// ErrCompensationFailed means the rollback delete itself failed and a
	// phantom pending booking remains for operator reconciliation.
	ErrCompensationFailed = apperror.New(http.StatusInternalServerError, "failed to roll back booking; manual reconciliation required")
)

// Party size bounds per booking.
const (
	MinPartySize = 1
	MaxPartySize = 12
)

// Booking reserves one table for one half-open time interval [StartTime, EndTime).
type Booking struct {
	ID              string
	TableID         string
	TableNumber     string
	TableLocation   string
	UserID          string
	UserName        string
	StartTime       time.Time
	EndTime         time.Time
	Status          Status
	Purpose         string
	PartySize       int
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	TableID   string
	Status    string
	StartTime *time.Time // Only bookings ending after this time
	EndTime   *time.Time // Only bookings starting before this time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
