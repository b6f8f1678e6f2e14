package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hariship/apps-dashboard-backend/models"
)

func TestSeedGeneralPopulatesEverything(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedGeneral("", "")))

	require.EqualValues(t, 6, count(t, db, "technologies"))
	require.EqualValues(t, 3, count(t, db, "integrations"))
	require.EqualValues(t, 1, count(t, db, "projects"))
	require.EqualValues(t, 5, count(t, db, "project_technologies"))
	require.EqualValues(t, 4, count(t, db, "updates"))
	require.EqualValues(t, 1, count(t, db, "users"))

	var project models.Project
	require.NoError(t, db.Where("slug = ?", "civic-pulse-dashboard").First(&project).Error)
	require.True(t, project.Featured)
	require.NotNil(t, project.ArchitectureDiagram)
	require.NotNil(t, project.ArchitectureCode)

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@haripriya.org").First(&admin).Error)
	require.True(t, admin.Active)
	require.Equal(t, "admin", admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestSeedGeneralUsesConfiguredAdmin(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedGeneral("boss@example.com", "s3cret")))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "boss@example.com").First(&admin).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
}

func TestSeedIsRepeatable(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedGeneral("", "")))
	require.NoError(t, RunSeed(db, SeedGeneral("", "")))

	require.EqualValues(t, 6, count(t, db, "technologies"))
	require.EqualValues(t, 1, count(t, db, "projects"))
	require.EqualValues(t, 4, count(t, db, "updates"))
	require.EqualValues(t, 1, count(t, db, "users"))
}

func TestSeedCivicPulsePopulatesBothProjects(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedCivicPulse("", "")))

	require.EqualValues(t, 9, count(t, db, "technologies"))
	require.EqualValues(t, 2, count(t, db, "projects"))
	require.EqualValues(t, 3, count(t, db, "integrations"))
	require.EqualValues(t, 5, count(t, db, "updates"))

	var apps models.Project
	require.NoError(t, db.Where("slug = ?", "apps-dashboard").First(&apps).Error)

	var appsLinks int64
	require.NoError(t, db.Model(&models.ProjectTechnology{}).
		Where("project_id = ?", apps.ID).Count(&appsLinks).Error)
	require.EqualValues(t, 9, appsLinks)

	// The civic project references a slug its own dataset never defines;
	// unknown slugs are skipped rather than failing the seed
	var civic models.Project
	require.NoError(t, db.Where("slug = ?", "civic-pulse").First(&civic).Error)

	var civicLinks int64
	require.NoError(t, db.Model(&models.ProjectTechnology{}).
		Where("project_id = ?", civic.ID).Count(&civicLinks).Error)
	require.EqualValues(t, 3, civicLinks)
}

func TestSeedSwitchesDatasets(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedGeneral("", "")))
	require.NoError(t, RunSeed(db, SeedCivicPulse("", "")))

	require.EqualValues(t, 2, count(t, db, "projects"))
	require.EqualValues(t, 9, count(t, db, "technologies"))

	var gone int64
	require.NoError(t, db.Model(&models.Project{}).
		Where("slug = ?", "civic-pulse-dashboard").Count(&gone).Error)
	require.Zero(t, gone)
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db := testDB(t)

	require.NoError(t, RunSeed(db, SeedGeneral("", "")))

	boom := errors.New("boom")
	failing := func(tx *gorm.DB) error {
		if err := tx.Create(&models.Technology{Name: "Rust", Slug: "rust", Category: "language", Color: "#000000", Active: true}).Error; err != nil {
			return err
		}
		return boom
	}

	err := RunSeed(db, failing)
	require.ErrorIs(t, err, boom)

	// The wipe and the partial insert both rolled back
	require.EqualValues(t, 6, count(t, db, "technologies"))
	require.EqualValues(t, 1, count(t, db, "projects"))
	require.EqualValues(t, 4, count(t, db, "updates"))
	require.EqualValues(t, 1, count(t, db, "users"))

	var rust int64
	require.NoError(t, db.Model(&models.Technology{}).Where("slug = ?", "rust").Count(&rust).Error)
	require.Zero(t, rust)
}
