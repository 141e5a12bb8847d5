package service_test

import (
	"context"
	"testing"

	"github.com/pawfinder/adoption-backend/internal/repository"
	"github.com/pawfinder/adoption-backend/internal/repository/postgres"
	"github.com/pawfinder/adoption-backend/internal/service"
	"github.com/pawfinder/adoption-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterService_ListResolvesCreatorNames(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	centerService := service.NewCenterService(repos.Center, repos.User)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().
		WithName("Grace", "Hopper").
		Build(t, testDB.DB)
	testutil.NewCenterBuilder().
		WithAddedBy(creator.ID).
		Build(t, testDB.DB)

	listings, err := centerService.List(ctx, repository.CenterFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	require.NotNil(t, listings[0].AddedByName)
	assert.Equal(t, "Grace Hopper", *listings[0].AddedByName)
}

func TestCenterService_ListDanglingCreatorYieldsNilName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	centerService := service.NewCenterService(repos.Center, repos.User)
	ctx := context.Background()

	creator, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	center := testutil.NewCenterBuilder().
		WithAddedBy(creator.ID).
		Build(t, testDB.DB)

	// The API never deletes users, but a listing must still survive a
	// dangling creator reference instead of failing.
	require.NoError(t, testDB.DB.Exec("DELETE FROM users WHERE id = ?", creator.ID).Error)

	listings, err := centerService.List(ctx, repository.CenterFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 1)

	assert.Equal(t, center.ID, listings[0].Center.ID)
	assert.Nil(t, listings[0].AddedByName)
}
