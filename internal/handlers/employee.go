// internal/handlers/employee.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igormatos02/timecontrolapi/internal/models"
	"github.com/igormatos02/timecontrolapi/internal/repository"
)

type EmployeeHandler struct {
	Repo *repository.EmployeeRepository
}

func NewEmployeeHandler(repo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{Repo: repo}
}

type EmployeeRequest struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Employee{Login: req.Login, Name: req.Name}
	if err := h.Repo.Create(&row); err != nil {
		serverError(c, "create employee", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *EmployeeHandler) List(c *gin.Context) {
	rows, err := h.Repo.List(map[string]string{
		"login": c.Query("login"),
		"name":  c.Query("name"),
	})
	if err != nil {
		serverError(c, "list employees", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := h.Repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		serverError(c, "get employee", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	row := models.Employee{Login: req.Login, Name: req.Name}
	if err := h.Repo.Update(id, &row); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		serverError(c, "update employee", err)
		return
	}

	row.ID = id
	c.JSON(http.StatusOK, gin.H{"data": row})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		serverError(c, "delete employee", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
