package database

import (
	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

type Database struct {
	db *gorm.DB

	projectRepo           *ProjectRepo
	projectTechnologyRepo *ProjectTechnologyRepo
	technologyRepo        *TechnologyRepo
	integrationRepo       *IntegrationRepo
	updateRepo            *UpdateRepo
	userRepo              *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		projectRepo:           NewProjectRepo(db),
		projectTechnologyRepo: NewProjectTechnologyRepo(db),
		technologyRepo:        NewTechnologyRepo(db),
		integrationRepo:       NewIntegrationRepo(db),
		updateRepo:            NewUpdateRepo(db),
		userRepo:              NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTechnologyRepo() *ProjectTechnologyRepo {
	return d.projectTechnologyRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) IntegrationRepo() *IntegrationRepo {
	return d.integrationRepo
}

func (d Database) UpdateRepo() *UpdateRepo {
	return d.updateRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Seed wipes and repopulates every table using the given strategy, all inside
// one transaction.
func (d Database) Seed(strategy SeedStrategy) error {
	return RunSeed(d.db, strategy)
}

// Migrate applies the additive schema migration. Safe to re-run.
func (d Database) Migrate() error {
	return Migrate(d.db)
}

// AutoMigrate creates the full schema idempotently. The join table is
// registered first so gorm materializes project_technologies from the
// explicit join model instead of inventing its own.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Project{}, "Technologies", &models.ProjectTechnology{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.Project{},
		&models.Integration{},
		&models.Update{},
	)
}
