package models

import "time"

// Project statuses accepted by the write path.
var ProjectStatuses = []string{"active", "maintenance", "archived"}

// Project represents a portfolio project with its architecture metadata
type Project struct {
	ID                   uint         `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name                 string       `json:"name" db:"name" gorm:"type:text;not null"`
	Slug                 string       `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description          string       `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription      *string      `json:"long_description" db:"long_description" gorm:"type:text"`
	LiveURL              string       `json:"live_url" db:"live_url" gorm:"type:text;not null"`
	SourceURL            string       `json:"source_url" db:"source_url" gorm:"type:text;not null"`
	ImageURL             *string      `json:"image_url" db:"image_url" gorm:"type:text"`
	Status               string       `json:"status" db:"status" gorm:"type:text;not null;default:active"`
	Featured             bool         `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder            int          `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	ArchitectureDiagram  *string      `json:"architecture_diagram" db:"architecture_diagram" gorm:"type:text"`
	ArchitectureCode     *string      `json:"architecture_code" db:"architecture_code" gorm:"type:text"`
	TechStackDescription *string      `json:"tech_stack_description" db:"tech_stack_description" gorm:"type:text"`
	CreatedAt            time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" db:"updated_at"`
	Technologies         []Technology `json:"technologies" gorm:"many2many:project_technologies"`
}

// ValidProjectStatus reports whether status is one of the accepted values.
func ValidProjectStatus(status string) bool {
	for _, s := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}
