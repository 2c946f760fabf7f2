package http

import (
	"time"

	"github.com/JadissEL/table-booking-backend/internal/pkg/request"
	"github.com/JadissEL/table-booking-backend/internal/table"
)

type TableResponse struct {
	ID          string    `json:"id"`
	TableNumber string    `json:"table_number"`
	Capacity    int       `json:"capacity"`
	Location    string    `json:"location"`
	Features    []string  `json:"features"`
	IsAvailable bool      `json:"is_available"`
	PhotoURL    *string   `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableTag is a brief representation of a table for embedding.
type TableTag struct {
	ID          string `json:"id"`
	TableNumber string `json:"table_number"`
	Location    string `json:"location"`
}

func NewTableResponse(t *table.Table) TableResponse {
	features := make([]string, 0, len(t.Features))
	for _, f := range t.Features {
		features = append(features, string(f))
	}

	var photoURL *string
	if t.PhotoFileID != nil {
		u := "/v1/files/" + *t.PhotoFileID
		photoURL = &u
	}

	return TableResponse{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
		Location:    t.Location,
		Features:    features,
		IsAvailable: t.IsAvailable,
		PhotoURL:    photoURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type CreateTableBody struct {
	TableNumber string   `json:"table_number" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Location    string   `json:"location" binding:"required"`
	Features    []string `json:"features" binding:"omitempty,dive,oneof=power_outlet window_view quiet_zone group_study"`
}

type UpdateTableBody struct {
	TableNumber *string  `json:"table_number"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=1"`
	Location    *string  `json:"location"`
	Features    []string `json:"features" binding:"omitempty,dive,oneof=power_outlet window_view quiet_zone group_study"`
}

// SearchTablesRequest defines query parameters for searching tables.
type SearchTablesRequest struct {
	request.ListParams
	Capacity  int      `form:"capacity" binding:"omitempty,min=1"`
	Location  string   `form:"location"`
	Features  []string `form:"features" binding:"omitempty,dive,oneof=power_outlet window_view quiet_zone group_study"`
	Available *bool    `form:"available"`
}

// Validate performs custom validation for SearchTablesRequest.
func (r *SearchTablesRequest) Validate() error {
	return nil
}
