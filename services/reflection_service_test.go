package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateReflectionValidatesRating(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	for _, bad := range []int{0, 6, -1} {
		r := bad
		_, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "x", Rating: &r})
		require.ErrorIs(t, err, ErrInvalidRating, "rating %d", bad)
	}

	good := 5
	ref, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "nailed it", Rating: &good})
	require.NoError(t, err)
	require.Equal(t, 5, *ref.Rating)

	// rating stays optional
	noRating, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "just notes"})
	require.NoError(t, err)
	require.Nil(t, noRating.Rating)
}

func TestReflectionScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)
	stranger := seedUser(t, db, "stranger@example.com")

	_, err := CreateReflection(stranger.ID, task.ID, ReflectionInput{Content: "peeking"})
	require.ErrorIs(t, err, ErrNotFound)

	ref, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "mine"})
	require.NoError(t, err)

	_, err = UpdateReflection(stranger.ID, ref.ID, ReflectionInput{Content: "hijack"})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, DeleteReflection(stranger.ID, ref.ID), ErrNotFound)
}

func TestUpdateReflectionKeepsUnsetFields(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	three := 3
	ref, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "draft", Rating: &three})
	require.NoError(t, err)

	updated, err := UpdateReflection(user.ID, ref.ID, ReflectionInput{Content: "final"})
	require.NoError(t, err)
	require.Equal(t, "final", updated.Content)
	require.Equal(t, 3, *updated.Rating)

	four := 4
	updated, err = UpdateReflection(user.ID, ref.ID, ReflectionInput{Rating: &four})
	require.NoError(t, err)
	require.Equal(t, "final", updated.Content)
	require.Equal(t, 4, *updated.Rating)
}

func TestDeleteReflection(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	ref, err := CreateReflection(user.ID, task.ID, ReflectionInput{Content: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, DeleteReflection(user.ID, ref.ID))

	refs, err := ListReflections(user.ID, task.ID)
	require.NoError(t, err)
	require.Empty(t, refs)
}
