// Package server maps the HTTP surface onto the blog services. Handlers
// only translate: parse input, call into blog, turn the result into JSON,
// a status code or a redirect.
package server

import (
	"net/http"
	"strconv"

	"github.com/Luismorlan/blogmux/blog"
	"github.com/Luismorlan/blogmux/media"
	"github.com/Luismorlan/blogmux/utils"
	. "github.com/Luismorlan/blogmux/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Server struct {
	DB   *gorm.DB
	Blog *blog.Service
	// Media stores uploaded post images.
	Media media.Store
	// ReadStatus is optional; nil disables read tracking.
	ReadStatus *utils.ReadStatusStore
}

func New(db *gorm.DB, mediaStore media.Store, readStatus *utils.ReadStatusStore) *Server {
	return &Server{
		DB:         db,
		Blog:       blog.NewService(db),
		Media:      mediaStore,
		ReadStatus: readStatus,
	}
}

// parsePage reads the 1-based ?page query. A malformed page number is
// treated exactly like an out-of-range one.
func parsePage(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, blog.ErrNotFound
	}
	return page, nil
}

// respondError maps service errors onto the wire. ErrNotFound covers both
// absence and visibility exclusion on purpose; everything unexpected is a
// logged 500.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, blog.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
	default:
		Log.Error("request failed: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
