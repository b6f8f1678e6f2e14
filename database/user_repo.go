package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindActiveByEmail returns the active user with the given email, or nil when
// there is none. Inactive users are invisible to the login path.
func (r *UserRepo) FindActiveByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ? AND active = ?", email, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login
func (r *UserRepo) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", now).Error
}
