package database

import (
	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

type ProjectTechnologyRepo struct {
	db *gorm.DB
}

func NewProjectTechnologyRepo(db *gorm.DB) *ProjectTechnologyRepo {
	return &ProjectTechnologyRepo{db}
}

// CountByTechnologyID returns how many projects reference the technology.
// A technology with a nonzero count must not be deleted.
func (r *ProjectTechnologyRepo) CountByTechnologyID(technologyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectTechnology{}).
		Where("technology_id = ?", technologyID).
		Count(&count).Error
	return count, err
}

// FindByProjectID returns the link rows of one project
func (r *ProjectTechnologyRepo) FindByProjectID(projectID uint) ([]*models.ProjectTechnology, error) {
	var links []*models.ProjectTechnology
	err := r.db.Where("project_id = ?", projectID).Find(&links).Error
	return links, err
}

// Add inserts a new project/technology link
func (r *ProjectTechnologyRepo) Add(link *models.ProjectTechnology) error {
	return r.db.Create(link).Error
}
