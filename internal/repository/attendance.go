// internal/repository/attendance.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
)

var attendanceFilters = map[string]Filter{
	"date":       {Column: "date"},
	"employeeId": {Column: "employee_id"},
}

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(row *models.Attendance) error {
	return r.db.Create(row).Error
}

func (r *AttendanceRepository) List(filters map[string]string) ([]models.Attendance, error) {
	rows := []models.Attendance{}
	tx := applyFilters(r.db.Model(&models.Attendance{}), attendanceFilters, filters)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceRepository) Get(id uint) (*models.Attendance, error) {
	var row models.Attendance
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *AttendanceRepository) Update(id uint, row *models.Attendance) error {
	res := r.db.Model(&models.Attendance{}).Where("id = ?", id).Updates(map[string]any{
		"date":        row.Date,
		"project_id":  row.ProjectID,
		"employee_id": row.EmployeeID,
		"observation": row.Observation,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Attendance{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
