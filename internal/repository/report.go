// internal/repository/report.go
package repository

import "gorm.io/gorm"

// ReportRow is one denormalized line of the monthly report: a project the
// team owns, the employee's membership, and the reported total when a
// report row exists for that month.
type ReportRow struct {
	IO           string   `json:"io"`
	ProjectName  string   `json:"projectName"`
	TeamName     string   `json:"teamName"`
	EmployeeName string   `json:"employeeName"`
	Year         *int     `json:"year"`
	Month        *int     `json:"month"`
	Total        *float64 `json:"total"`
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Projects without a report row for the requested month still appear, with
// year/month/total null. Projects without a team, or team/employee pairs
// without a membership, are excluded by the inner joins.
const monthlyReportQuery = `
SELECT p.io,
       p.name AS project_name,
       t.name AS team_name,
       e.name AS employee_name,
       r.year,
       r.month,
       r.total
FROM projects p
INNER JOIN teams t ON t.id = p.team_id
INNER JOIN employee_teams et ON et.team_id = t.id
INNER JOIN employees e ON e.id = et.employee_id
LEFT JOIN reports r ON r.project_id = p.id
                   AND r.team_id = t.id
                   AND r.employee_id = e.id
                   AND r.year = ?
                   AND r.month = ?
WHERE p.team_id = ?
  AND et.employee_id = ?`

func (r *ReportRepository) MonthlyByTeamEmployee(teamID, employeeID, year, month int) ([]ReportRow, error) {
	rows := []ReportRow{}
	if err := r.db.Raw(monthlyReportQuery, year, month, teamID, employeeID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
