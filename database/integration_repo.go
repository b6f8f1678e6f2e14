package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

type IntegrationRepo struct {
	db *gorm.DB
}

func NewIntegrationRepo(db *gorm.DB) *IntegrationRepo {
	return &IntegrationRepo{db}
}

// FindAll returns all integrations ordered by sort order, alphabetical within
// the same slot.
func (r *IntegrationRepo) FindAll() ([]*models.Integration, error) {
	var integrations []*models.Integration
	err := r.db.Order("sort_order ASC, name ASC").Find(&integrations).Error
	return integrations, err
}

// FindByID returns an integration by its ID, or nil when no such row exists.
func (r *IntegrationRepo) FindByID(id uint) (*models.Integration, error) {
	var integration models.Integration
	err := r.db.First(&integration, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &integration, nil
}

// Add inserts a new integration into the database
func (r *IntegrationRepo) Add(integration *models.Integration) error {
	return r.db.Create(integration).Error
}

// Update replaces every mutable field of an existing integration
func (r *IntegrationRepo) Update(integration *models.Integration) error {
	return r.db.Save(integration).Error
}

// Delete removes an integration from the database by id
func (r *IntegrationRepo) Delete(id uint) error {
	return r.db.Delete(&models.Integration{}, id).Error
}
