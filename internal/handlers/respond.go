// internal/handlers/respond.go
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/middleware"
)

// parseID reads the :id path parameter; on failure it writes the 400
// response itself and returns ok=false.
func parseID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id64), true
}

// serverError logs store-side detail with the request id and answers with
// the generic 500 envelope. Detail never reaches the client.
func serverError(c *gin.Context, op string, err error) {
	log.Printf("[%s] %s: %v", c.GetString(middleware.RequestIDKey), op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
