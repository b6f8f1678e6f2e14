package models

import "time"

// User is an admin account. Rows are provisioned by the seed routines and
// mutated only by the login path (last-login touch).
type User struct {
	ID           uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Email        string     `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `json:"-" db:"password_hash" gorm:"type:text;not null"`
	FirstName    string     `json:"first_name" db:"first_name" gorm:"type:text;not null"`
	LastName     string     `json:"last_name" db:"last_name" gorm:"type:text;not null"`
	Role         string     `json:"role" db:"role" gorm:"type:text;not null;default:admin"`
	Active       bool       `json:"active" db:"active" gorm:"not null;default:true"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
