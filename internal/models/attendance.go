// internal/models/attendance.go
package models

type Attendance struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Date        string `gorm:"index;not null" json:"date"` // "YYYY-MM-DD"
	ProjectID   uint   `gorm:"index;not null" json:"projectId"`
	EmployeeID  uint   `gorm:"index;not null" json:"employeeId"`
	Observation string `json:"observation"`
}
