package models

import "time"

// Technology categories accepted by the write path.
var TechnologyCategories = []string{
	"frontend", "backend", "database", "devops", "tool", "framework", "language",
}

// Technology represents one entry of a project's tech stack
type Technology struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug       string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Category   string    `json:"category" db:"category" gorm:"type:text;not null;default:tool"`
	Color      string    `json:"color" db:"color" gorm:"type:text;not null;default:#6B7280"`
	Icon       *string   `json:"icon" db:"icon" gorm:"type:text"`
	WebsiteURL *string   `json:"website_url" db:"website_url" gorm:"type:text"`
	Active     bool      `json:"active" db:"active" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// ValidCategory reports whether category is one of the accepted values.
func ValidCategory(category string) bool {
	for _, c := range TechnologyCategories {
		if c == category {
			return true
		}
	}
	return false
}
