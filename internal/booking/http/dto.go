package http

import (
	"time"

	"github.com/JadissEL/table-booking-backend/internal/booking"
	"github.com/JadissEL/table-booking-backend/internal/pkg/request"
	tableHttp "github.com/JadissEL/table-booking-backend/internal/table/http"
	userHttp "github.com/JadissEL/table-booking-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	TableID       string     `form:"table_id" binding:"omitempty,uuid"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	UserID        string     `form:"user_id" binding:"omitempty,uuid"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy        string     `form:"sort_by" binding:"omitempty,oneof=start_time end_time created_at status"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.StartTimeFrom != nil && r.StartTimeTo != nil {
		if r.StartTimeFrom.After(*r.StartTimeTo) {
			return booking.ErrInvalidTimeRange
		}
	}
	return nil
}

type BookingResponse struct {
	ID              string             `json:"id"`
	Table           tableHttp.TableTag `json:"table"`
	User            userHttp.UserTag   `json:"user"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         time.Time          `json:"end_time"`
	Status          string             `json:"status"`
	Purpose         string             `json:"purpose"`
	PartySize       int                `json:"party_size"`
	SpecialRequests *string            `json:"special_requests,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Table:           tableHttp.TableTag{ID: b.TableID, TableNumber: b.TableNumber, Location: b.TableLocation},
		User:            userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          string(b.Status),
		Purpose:         b.Purpose,
		PartySize:       b.PartySize,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CancelResponse reports the outcome of a cancel request. Changed is false
// when the booking was already cancelled.
type CancelResponse struct {
	Booking BookingResponse `json:"booking"`
	Changed bool            `json:"changed"`
}

type CreateBookingBody struct {
	TableID         string    `json:"table_id" binding:"required,uuid"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
	Purpose         string    `json:"purpose" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,min=1,max=12"`
	SpecialRequests *string   `json:"special_requests"`
}

// Validate performs custom validation for CreateBookingBody.
func (r *CreateBookingBody) Validate() error {
	if !r.EndTime.After(r.StartTime) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
