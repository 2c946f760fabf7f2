package table

import (
	"net/http"
	"time"

	"github.com/JadissEL/table-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "table not found")
	ErrNumberTaken      = apperror.New(http.StatusConflict, "table number already in use")
	ErrNumberRequired   = apperror.New(http.StatusBadRequest, "table number is required")
	ErrLocationRequired = apperror.New(http.StatusBadRequest, "location is required")
	ErrInvalidCapacity  = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrInvalidFeature   = apperror.New(http.StatusBadRequest, "unknown table feature")
	ErrHasBookings      = apperror.New(http.StatusConflict, "table still has active bookings")
)

// Feature is a fixed attribute of a table. The vocabulary is closed;
// unknown values are rejected before anything is persisted.
type Feature string

const (
	FeaturePowerOutlet Feature = "power_outlet"
	FeatureWindowView  Feature = "window_view"
	FeatureQuietZone   Feature = "quiet_zone"
	FeatureGroupStudy  Feature = "group_study"
)

// ValidFeatures lists every accepted feature value.
var ValidFeatures = []Feature{
	FeaturePowerOutlet,
	FeatureWindowView,
	FeatureQuietZone,
	FeatureGroupStudy,
}

// ParseFeatures validates raw feature strings against the closed vocabulary.
func ParseFeatures(raw []string) ([]Feature, error) {
	features := make([]Feature, 0, len(raw))
	for _, r := range raw {
		f := Feature(r)
		valid := false
		for _, v := range ValidFeatures {
			if f == v {
				valid = true
				break
			}
		}
		if !valid {
			return nil, ErrInvalidFeature
		}
		features = append(features, f)
	}
	return features, nil
}

// Table is a bookable study table.
// IsAvailable is a denormalized hint maintained by the booking module;
// it is only trusted for list filtering, never for admission decisions.
type Table struct {
	ID          string
	TableNumber string
	Capacity    int
	Location    string
	Features    []Feature
	IsAvailable bool
	PhotoFileID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for searching tables.
type Filter struct {
	CapacityFloor int
	Location      string
	Features      []Feature // all listed features must be present
	AvailableOnly bool
	Page          int
	PageSize      int
}
