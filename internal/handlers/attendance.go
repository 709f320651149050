// internal/handlers/attendance.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/models"
	"github.com/igormatos02/timecontrolapi/internal/repository"
)

type AttendanceHandler struct {
	Repo *repository.AttendanceRepository
}

func NewAttendanceHandler(repo *repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{Repo: repo}
}

type AttendanceRequest struct {
	Date        string `json:"date"`
	ProjectID   uint   `json:"projectId"`
	EmployeeID  uint   `json:"employeeId"`
	Observation string `json:"observation"`
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Attendance{
		Date:        req.Date,
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		Observation: req.Observation,
	}
	if err := h.Repo.Create(&row); err != nil {
		serverError(c, "create attendance", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *AttendanceHandler) List(c *gin.Context) {
	rows, err := h.Repo.List(map[string]string{
		"date":       c.Query("date"),
		"employeeId": c.Query("employeeId"),
	})
	if err != nil {
		serverError(c, "list attendances", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.Repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attendance not found"})
			return
		}
		serverError(c, "get attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Attendance{
		Date:        req.Date,
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		Observation: req.Observation,
	}
	if err := h.Repo.Update(id, &row); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attendance not found"})
			return
		}
		serverError(c, "update attendance", err)
		return
	}

	row.ID = id
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attendance not found"})
			return
		}
		serverError(c, "delete attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
