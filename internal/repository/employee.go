// internal/repository/employee.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
)

var employeeFilters = map[string]Filter{
	"login": {Column: "login", Substring: true},
	"name":  {Column: "name", Substring: true},
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(row *models.Employee) error {
	return r.db.Create(row).Error
}

func (r *EmployeeRepository) List(filters map[string]string) ([]models.Employee, error) {
	rows := []models.Employee{}
	tx := applyFilters(r.db.Model(&models.Employee{}), employeeFilters, filters)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeRepository) Get(id uint) (*models.Employee, error) {
	var row models.Employee
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Update replaces every editable field; zero values overwrite too.
func (r *EmployeeRepository) Update(id uint, row *models.Employee) error {
	res := r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(map[string]any{
		"login": row.Login,
		"name":  row.Name,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
