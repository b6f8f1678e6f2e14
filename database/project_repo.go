package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hariship/apps-dashboard-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects ordered by sort order, newest first within the
// same slot, each with its associated technologies.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Technologies").
		Order("sort_order ASC, created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		if project.Technologies == nil {
			project.Technologies = []models.Technology{}
		}
	}
	return projects, nil
}

// FindByID returns a project by its ID with its technologies, or nil when no
// such row exists.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Technologies").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if project.Technologies == nil {
		project.Technologies = []models.Technology{}
	}
	return &project, nil
}

// Add inserts a new project and its technology links in one transaction.
func (r *ProjectRepo) Add(project *models.Project, technologyIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		for _, technologyID := range technologyIDs {
			link := models.ProjectTechnology{ProjectID: project.ID, TechnologyID: technologyID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update replaces every mutable field of an existing project and rewrites its
// technology links, in one transaction.
func (r *ProjectRepo) Update(project *models.Project, technologyIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return err
		}
		for _, technologyID := range technologyIDs {
			link := models.ProjectTechnology{ProjectID: project.ID, TechnologyID: technologyID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a project together with its technology links and updates.
// The children go first, inside one transaction, so the store never needs a
// declarative cascade.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTechnology{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Update{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
