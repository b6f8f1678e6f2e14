package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies grouped by category, alphabetical within it.
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("category ASC, name ASC").Find(&technologies).Error
	return technologies, err
}

// FindByID returns a technology by its ID, or nil when no such row exists.
func (r *TechnologyRepo) FindByID(id uint) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// Add inserts a new technology into the database
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// Update replaces every mutable field of an existing technology
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	return r.db.Save(technology).Error
}

// Delete removes a technology from the database by id. Callers are expected
// to run the project-usage check first.
func (r *TechnologyRepo) Delete(id uint) error {
	return r.db.Delete(&models.Technology{}, id).Error
}
