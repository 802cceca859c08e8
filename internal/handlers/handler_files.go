package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/adapters/storage/local"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerFileRoutes serves uploads kept by the local blob store. The route is
// public; access is granted by the signature in the link.
func registerFileRoutes(r *gin.Engine, store *local.Store) {
	r.GET(local.FilesRoute+"/*key", func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("key"), "/")
		if err := store.Verify(key, c.Query("expires"), c.Query("sig")); err != nil {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Link is invalid or has expired"})
			return
		}
		path, err := store.Path(key)
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "File not found"})
			return
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "File not found"})
			return
		}
		c.Header("Cache-Control", "private, no-store")
		c.File(path)
	})
}
