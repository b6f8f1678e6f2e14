package models

// ProjectTechnology links a project to one technology of its stack. The pair
// is the whole identity; rows are removed together with their project.
type ProjectTechnology struct {
	ProjectID    uint `json:"project_id" db:"project_id" gorm:"primaryKey"`
	TechnologyID uint `json:"technology_id" db:"technology_id" gorm:"primaryKey"`
}

func (ProjectTechnology) TableName() string {
	return "project_technologies"
}
