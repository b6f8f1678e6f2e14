package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hariship/apps-dashboard-backend/models"
)

func TestUpdateRepoFindPublished(t *testing.T) {
	db := testDB(t)
	projectRepo := NewProjectRepo(db)
	repo := NewUpdateRepo(db)

	alpha := seedProject(t, projectRepo, "Alpha", "alpha", 1, nil)
	beta := seedProject(t, projectRepo, "Beta", "beta", 2, nil)

	rows := []models.Update{
		{ProjectID: alpha.ID, Title: "Alpha launch", Content: "text", UpdateType: "feature", Published: true},
		{ProjectID: alpha.ID, Title: "Alpha draft", Content: "text", UpdateType: "feature", Published: false},
		{ProjectID: beta.ID, Title: "Beta fix", Content: "text", UpdateType: "bugfix", Published: true},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	all, err := repo.FindPublished(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, update := range all {
		require.True(t, update.Published)
		require.NotEmpty(t, update.ProjectName)
		require.NotEmpty(t, update.ProjectSlug)
	}

	onlyAlpha, err := repo.FindPublished(&alpha.ID)
	require.NoError(t, err)
	require.Len(t, onlyAlpha, 1)
	require.Equal(t, "Alpha launch", onlyAlpha[0].Title)
	require.Equal(t, "Alpha", onlyAlpha[0].ProjectName)
	require.Equal(t, "alpha", onlyAlpha[0].ProjectSlug)
}

func TestUpdateRepoFindPublishedEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewUpdateRepo(db)

	updates, err := repo.FindPublished(nil)
	require.NoError(t, err)
	require.NotNil(t, updates)
	require.Empty(t, updates)
}
