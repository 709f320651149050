// internal/handlers/project.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/models"
	"github.com/igormatos02/timecontrolapi/internal/repository"
)

type ProjectHandler struct {
	Repo *repository.ProjectRepository
}

func NewProjectHandler(repo *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{Repo: repo}
}

type ProjectRequest struct {
	IO     string `json:"io"`
	Name   string `json:"name"`
	TeamID uint   `json:"teamId"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Project{IO: req.IO, Name: req.Name, TeamID: req.TeamID}
	if err := h.Repo.Create(&row); err != nil {
		serverError(c, "create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *ProjectHandler) List(c *gin.Context) {
	rows, err := h.Repo.List(map[string]string{
		"io":   c.Query("io"),
		"name": c.Query("name"),
	})
	if err != nil {
		serverError(c, "list projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.Repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		serverError(c, "get project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Project{IO: req.IO, Name: req.Name, TeamID: req.TeamID}
	if err := h.Repo.Update(id, &row); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		serverError(c, "update project", err)
		return
	}

	row.ID = id
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		serverError(c, "delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
