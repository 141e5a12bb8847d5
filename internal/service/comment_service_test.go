package service_test

import (
	"context"
	"testing"

	"github.com/pawfinder/adoption-backend/internal/repository/postgres"
	"github.com/pawfinder/adoption-backend/internal/service"
	"github.com/pawfinder/adoption-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateSnapshotsAuthorName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	commentService := service.NewCommentService(repos.Comment)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().
		WithName("Margaret", "Hamilton").
		Build(t, testDB.DB)

	comment, err := commentService.Create(ctx, author, service.CreateCommentInput{
		BreedID: "beagle",
		Content: "Great with kids",
	})
	require.NoError(t, err)

	assert.Equal(t, author.ID, comment.UserID)
	assert.Equal(t, "Margaret Hamilton", comment.UserName)

	// The stored name is a snapshot: mutating the user row afterwards must
	// not change what the comment displays.
	require.NoError(t, testDB.DB.Exec(
		"UPDATE users SET first_name = ? WHERE id = ?", "Renamed", author.ID).Error)

	comments, err := commentService.ListByBreed(ctx, "beagle")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Margaret Hamilton", comments[0].UserName)
}
