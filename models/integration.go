package models

import "time"

// Integration statuses accepted by the write path.
var IntegrationStatuses = []string{"operational", "maintenance", "outage"}

// Integration represents an infrastructure/service dependency and its status.
// Independent of projects.
type Integration struct {
	ID          uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	URL         string     `json:"url" db:"url" gorm:"type:text;not null"`
	Icon        *string    `json:"icon" db:"icon" gorm:"type:text"`
	Status      string     `json:"status" db:"status" gorm:"type:text;not null;default:operational"`
	Version     *string    `json:"version" db:"version" gorm:"type:text"`
	LastChecked *time.Time `json:"last_checked" db:"last_checked"`
	Enabled     bool       `json:"enabled" db:"enabled" gorm:"not null;default:true"`
	SortOrder   int        `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidIntegrationStatus reports whether status is one of the accepted values.
func ValidIntegrationStatus(status string) bool {
	for _, s := range IntegrationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
