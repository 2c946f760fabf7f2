package file

import (
	"net/http"
	"time"

	"github.com/JadissEL/table-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "file not found")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "only image uploads are supported")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// File is an uploaded image (table photos) stored on disk with its
// metadata in the database.
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string // internal path, never exposed
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}
