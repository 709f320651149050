// internal/handlers/report.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/repository"
)

type ReportHandler struct {
	Repo *repository.ReportRepository
}

func NewReportHandler(repo *repository.ReportRepository) *ReportHandler {
	return &ReportHandler{Repo: repo}
}

// Monthly serves GET /report/:teamId/:employeeId/:year/:month. All four
// path parameters must be numeric; validation runs before any store access
// and the first failure names its parameter.
func (h *ReportHandler) Monthly(c *gin.Context) {
	params := []string{"teamId", "employeeId", "year", "month"}
	values := make([]int, len(params))
	for i, name := range params {
		n, err := strconv.Atoi(strings.TrimSpace(c.Param(name)))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
			return
		}
		values[i] = n
	}

	rows, err := h.Repo.MonthlyByTeamEmployee(values[0], values[1], values[2], values[3])
	if err != nil {
		serverError(c, "monthly report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}
