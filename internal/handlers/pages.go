package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// PageHandler delivers the static documents under the public directory.
// Pages are plain files; all dynamic data comes from the API, and access
// is enforced by the same middleware that gates the API.
type PageHandler struct {
	dir string
}

func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

// Serve returns a handler for one named page.
func (h *PageHandler) Serve(name string) gin.HandlerFunc {
	path := filepath.Join(h.dir, name)
	return func(c *gin.Context) {
		c.File(path)
	}
}
