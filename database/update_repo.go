package database

import (
	"time"

	"gorm.io/gorm"
)

type UpdateRepo struct {
	db *gorm.DB
}

func NewUpdateRepo(db *gorm.DB) *UpdateRepo {
	return &UpdateRepo{db}
}

// PublishedUpdate is one changelog row joined with its project's name and slug.
type PublishedUpdate struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Version     *string   `json:"version"`
	UpdateType  string    `json:"update_type"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ProjectName string    `json:"project_name"`
	ProjectSlug string    `json:"project_slug"`
}

// FindPublished returns published updates newest first, optionally filtered to
// one project.
func (r *UpdateRepo) FindPublished(projectID *uint) ([]PublishedUpdate, error) {
	query := r.db.Table("updates").
		Select("updates.id, updates.project_id, updates.title, updates.content, updates.version, " +
			"updates.update_type, updates.published, updates.created_at, updates.updated_at, " +
			"projects.name AS project_name, projects.slug AS project_slug").
		Joins("LEFT JOIN projects ON projects.id = updates.project_id").
		Where("updates.published = ?", true)

	if projectID != nil {
		query = query.Where("updates.project_id = ?", *projectID)
	}

	updates := []PublishedUpdate{}
	err := query.Order("updates.created_at DESC").Scan(&updates).Error
	return updates, err
}
