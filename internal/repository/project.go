// internal/repository/project.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
)

var projectFilters = map[string]Filter{
	"io":   {Column: "io", Substring: true},
	"name": {Column: "name", Substring: true},
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(row *models.Project) error {
	return r.db.Create(row).Error
}

func (r *ProjectRepository) List(filters map[string]string) ([]models.Project, error) {
	rows := []models.Project{}
	tx := applyFilters(r.db.Model(&models.Project{}), projectFilters, filters)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ProjectRepository) Get(id uint) (*models.Project, error) {
	var row models.Project
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ProjectRepository) Update(id uint, row *models.Project) error {
	res := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]any{
		"io":      row.IO,
		"name":    row.Name,
		"team_id": row.TeamID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
