package models

import "time"

// Update types accepted by the write path.
var UpdateTypes = []string{"feature", "bugfix", "security", "performance", "breaking"}

// Update is a changelog entry belonging to exactly one project. Rows are
// removed together with their project.
type Update struct {
	ID         uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID  uint      `json:"project_id" db:"project_id" gorm:"not null;index:idx_updates_project_id"`
	Title      string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	Version    *string   `json:"version" db:"version" gorm:"type:text"`
	UpdateType string    `json:"update_type" db:"update_type" gorm:"type:text;not null;default:feature"`
	Published  bool      `json:"published" db:"published" gorm:"not null;default:true;index:idx_updates_published"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ValidUpdateType reports whether updateType is one of the accepted values.
func ValidUpdateType(updateType string) bool {
	for _, t := range UpdateTypes {
		if t == updateType {
			return true
		}
	}
	return false
}
