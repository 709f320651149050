// internal/repository/team.go
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
)

// Membership errors name the missing side of the link; both match
// ErrNotFound in errors.Is checks.
var (
	ErrMemberTeamNotFound     = fmt.Errorf("team: %w", ErrNotFound)
	ErrMemberEmployeeNotFound = fmt.Errorf("employee: %w", ErrNotFound)
)

var teamFilters = map[string]Filter{
	"name": {Column: "name", Substring: true},
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(row *models.Team) error {
	return r.db.Create(row).Error
}

func (r *TeamRepository) List(filters map[string]string) ([]models.Team, error) {
	rows := []models.Team{}
	tx := applyFilters(r.db.Model(&models.Team{}), teamFilters, filters)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TeamRepository) Get(id uint) (*models.Team, error) {
	var row models.Team
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *TeamRepository) Update(id uint, row *models.Team) error {
	res := r.db.Model(&models.Team{}).Where("id = ?", id).Updates(map[string]any{
		"name": row.Name,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Team{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddMember links an employee to a team in the employee_teams join table.
// Both rows must already exist: association Append upserts records carrying
// a primary key, so appending an unchecked id would manufacture an empty
// team or employee row instead of failing.
func (r *TeamRepository) AddMember(teamID, employeeID uint) error {
	var team models.Team
	if err := r.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberTeamNotFound
		}
		return err
	}

	var emp models.Employee
	if err := r.db.First(&emp, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberEmployeeNotFound
		}
		return err
	}

	return r.db.Model(&emp).Association("Teams").Append(&team)
}
