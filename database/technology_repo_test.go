package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hariship/apps-dashboard-backend/models"
)

func TestTechnologyRepoFindAllGroupsByCategory(t *testing.T) {
	db := testDB(t)
	repo := NewTechnologyRepo(db)

	seedTechnology(t, repo, "Zig", "zig", "language")
	seedTechnology(t, repo, "Postgres", "postgres", "database")
	seedTechnology(t, repo, "Go", "go", "language")

	technologies, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, technologies, 3)
	require.Equal(t, "Postgres", technologies[0].Name)
	require.Equal(t, "Go", technologies[1].Name)
	require.Equal(t, "Zig", technologies[2].Name)
}

func TestTechnologyRepoAddRejectsDuplicateSlug(t *testing.T) {
	db := testDB(t)
	repo := NewTechnologyRepo(db)

	seedTechnology(t, repo, "Go", "go", "language")

	duplicate := &models.Technology{Name: "Golang", Slug: "go", Category: "language", Color: "#00ADD8", Active: true}
	require.Error(t, repo.Add(duplicate))
}

func TestTechnologyRepoUsageCount(t *testing.T) {
	db := testDB(t)
	repo := NewTechnologyRepo(db)
	projectRepo := NewProjectRepo(db)
	linkRepo := NewProjectTechnologyRepo(db)

	used := seedTechnology(t, repo, "Go", "go", "language")
	unused := seedTechnology(t, repo, "Zig", "zig", "language")
	seedProject(t, projectRepo, "Svc", "svc", 1, []uint{used.ID})

	usedCount, err := linkRepo.CountByTechnologyID(used.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, usedCount)

	unusedCount, err := linkRepo.CountByTechnologyID(unused.ID)
	require.NoError(t, err)
	require.Zero(t, unusedCount)
}

func TestTechnologyRepoDelete(t *testing.T) {
	db := testDB(t)
	repo := NewTechnologyRepo(db)

	technology := seedTechnology(t, repo, "Go", "go", "language")
	require.NoError(t, repo.Delete(technology.ID))

	found, err := repo.FindByID(technology.ID)
	require.NoError(t, err)
	require.Nil(t, found)
}
