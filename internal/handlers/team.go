// internal/handlers/team.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/models"
	"github.com/igormatos02/timecontrolapi/internal/repository"
)

type TeamHandler struct {
	Repo *repository.TeamRepository
}

func NewTeamHandler(repo *repository.TeamRepository) *TeamHandler {
	return &TeamHandler{Repo: repo}
}

type TeamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Team{Name: req.Name}
	if err := h.Repo.Create(&row); err != nil {
		serverError(c, "create team", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *TeamHandler) List(c *gin.Context) {
	rows, err := h.Repo.List(map[string]string{
		"name": c.Query("name"),
	})
	if err != nil {
		serverError(c, "list teams", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.Repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		serverError(c, "get team", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Team{Name: req.Name}
	if err := h.Repo.Update(id, &row); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		serverError(c, "update team", err)
		return
	}

	row.ID = id
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
			return
		}
		serverError(c, "delete team", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}

// AddMember enrolls an employee into the team, backing the membership the
// monthly report joins on.
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	empRaw := strings.TrimSpace(c.Param("employeeId"))
	emp64, err := strconv.ParseUint(empRaw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	if err := h.Repo.AddMember(id, uint(emp64)); err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		case errors.Is(err, repository.ErrMemberEmployeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		default:
			serverError(c, "add team member", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"teamId": id, "employeeId": uint(emp64)}})
}
