// internal/models/report.go
package models

// Report rows are produced by an external aggregation job; this service
// only reads them.
type Report struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Year       int     `gorm:"index;not null" json:"year"`
	Month      int     `gorm:"index;not null" json:"month"`
	Total      float64 `gorm:"not null" json:"total"`
	ProjectID  uint    `gorm:"index;not null" json:"projectId"`
	TeamID     uint    `gorm:"index;not null" json:"teamId"`
	EmployeeID uint    `gorm:"index;not null" json:"employeeId"`
}
