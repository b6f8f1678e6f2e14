package database

import (
	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

// Migrate applies the additive migration that introduced architecture metadata
// and the updates table: add-if-missing only, never destructive, safe to
// re-run. It deliberately runs outside any explicit transaction since DDL
// statements commit on their own in most stores.
func Migrate(db *gorm.DB) error {
	migrator := db.Migrator()

	columns := []string{"architecture_diagram", "architecture_code", "tech_stack_description"}
	for _, column := range columns {
		if !migrator.HasColumn(&models.Project{}, column) {
			if err := migrator.AddColumn(&models.Project{}, column); err != nil {
				return err
			}
		}
	}

	if !migrator.HasTable(&models.Update{}) {
		if err := migrator.CreateTable(&models.Update{}); err != nil {
			return err
		}
	}

	indexes := []string{"idx_updates_project_id", "idx_updates_published"}
	for _, index := range indexes {
		if !migrator.HasIndex(&models.Update{}, index) {
			if err := migrator.CreateIndex(&models.Update{}, index); err != nil {
				return err
			}
		}
	}

	return nil
}
