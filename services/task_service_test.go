package services

import (
	"testing"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestCreateTaskDefaultsToExecution(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	task, err := CreateTask(user.ID, action.ID, TaskInput{Title: "write notes"})
	require.NoError(t, err)
	require.Equal(t, models.TaskTypeExecution, task.Type)
	require.Equal(t, models.TaskPending, task.Status)
	require.Nil(t, task.CompletedAt)
}

func TestCreateTaskValidatesInput(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	_, err := CreateTask(user.ID, action.ID, TaskInput{Title: "x", Type: "chore"})
	require.ErrorIs(t, err, ErrInvalidTaskType)

	bad := -5
	_, err = CreateTask(user.ID, action.ID, TaskInput{Title: "x", EstimatedTime: &bad})
	require.ErrorIs(t, err, ErrNegativeEstimate)
}

func TestCreateTaskScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	_, _, _, action := seedHierarchy(t, db)
	stranger := seedUser(t, db, "stranger@example.com")

	_, err := CreateTask(stranger.ID, action.ID, TaskInput{Title: "not yours"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTaskStatusStampsCompletedAt(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	task, err := CreateTask(user.ID, action.ID, TaskInput{Title: "t"})
	require.NoError(t, err)

	done, err := UpdateTaskStatus(user.ID, task.ID, models.TaskCompleted)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)

	skipped, err := UpdateTaskStatus(user.ID, task.ID, models.TaskSkipped)
	require.NoError(t, err)
	require.Nil(t, skipped.CompletedAt)
}

func TestUpdateTaskStatusRejectsUnknown(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	task, err := CreateTask(user.ID, action.ID, TaskInput{Title: "t"})
	require.NoError(t, err)

	_, err = UpdateTaskStatus(user.ID, task.ID, "finished")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateTaskFields(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	task, err := CreateTask(user.ID, action.ID, TaskInput{Title: "t"})
	require.NoError(t, err)

	est := 45
	updated, err := UpdateTask(user.ID, task.ID, TaskUpdateInput{
		Title:         "renamed",
		Type:          models.TaskTypeHabit,
		EstimatedTime: &est,
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, models.TaskTypeHabit, updated.Type)
	require.Equal(t, 45, *updated.EstimatedTime)
}

func TestListTasksInCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)

	_, err := CreateTask(user.ID, action.ID, TaskInput{Title: "first"})
	require.NoError(t, err)
	_, err = CreateTask(user.ID, action.ID, TaskInput{Title: "second"})
	require.NoError(t, err)

	tasks, err := ListTasks(user.ID, action.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].Title)
}
