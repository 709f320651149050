// internal/models/employee.go
package models

type Employee struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Login string `gorm:"not null" json:"login"`
	Name  string `gorm:"not null" json:"name"`

	Teams []Team `gorm:"many2many:employee_teams;" json:"teams,omitempty"`
}
