// internal/models/project.go
package models

type Project struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	IO     string `gorm:"not null" json:"io"` // internal order code
	Name   string `gorm:"not null" json:"name"`
	TeamID uint   `gorm:"index;not null" json:"teamId"`
}
