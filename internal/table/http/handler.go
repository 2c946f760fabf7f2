package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JadissEL/table-booking-backend/internal/auth"
	"github.com/JadissEL/table-booking-backend/internal/file"
	"github.com/JadissEL/table-booking-backend/internal/pkg/response"
	"github.com/JadissEL/table-booking-backend/internal/table"
)

type Handler struct {
	service     table.Service
	fileService file.Service
}

func NewHandler(service table.Service, fileService file.Service) *Handler {
	return &Handler{
		service:     service,
		fileService: fileService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req SearchTablesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	features, err := table.ParseFeatures(req.Features)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := table.Filter{
		CapacityFloor: req.Capacity,
		Location:      req.Location,
		Features:      features,
		AvailableOnly: req.Available != nil && *req.Available,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	tables, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TableResponse, len(tables))
	for i, t := range tables {
		items[i] = NewTableResponse(t)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTableResponse(t))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTableBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.Create(c.Request.Context(), table.CreateRequest{
		TableNumber: body.TableNumber,
		Capacity:    body.Capacity,
		Location:    body.Location,
		Features:    body.Features,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTableResponse(t))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateTableBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, table.UpdateRequest{
		TableNumber: body.TableNumber,
		Capacity:    body.Capacity,
		Location:    body.Location,
		Features:    body.Features,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTableResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto stores a photo for the table and links it.
func (h *Handler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}

	// Table must exist before we accept the upload.
	if _, err := h.service.GetByID(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), header, auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		response.Error(c, err)
		return
	}

	t, err := h.service.AttachPhoto(c.Request.Context(), id, f.ID)
	if err != nil {
		// Rollback: remove the orphaned file from storage and DB.
		_ = h.fileService.Delete(c.Request.Context(), f.ID)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTableResponse(t))
}
