package services

import (
	"testing"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGetGoal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "u@example.com")

	deadline := time.Now().AddDate(0, 6, 0)
	goal, err := CreateGoal(user.ID, GoalInput{
		Title:       "Ship the v2 platform",
		Description: "full rewrite",
		Deadline:    &deadline,
	})
	require.NoError(t, err)
	require.Equal(t, models.GoalNotStarted, goal.Status)
	require.Zero(t, goal.Progress)

	got, err := GetGoal(user.ID, goal.ID)
	require.NoError(t, err)
	require.Equal(t, "Ship the v2 platform", got.Title)
	require.NotNil(t, got.Deadline)
}

func TestGetGoalScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "u@example.com")
	stranger := seedUser(t, db, "other@example.com")

	goal, err := CreateGoal(user.ID, GoalInput{Title: "private"})
	require.NoError(t, err)

	_, err = GetGoal(stranger.ID, goal.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListGoalsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "u@example.com")

	first := &models.Goal{UserID: user.ID, Title: "older"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	_, err := CreateGoal(user.ID, GoalInput{Title: "newer"})
	require.NoError(t, err)

	goals, err := ListGoals(user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	require.Equal(t, "newer", goals[0].Title)
}

func TestUpdateGoalStatusCompletedForcesFullProgress(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "u@example.com")

	goal, err := CreateGoal(user.ID, GoalInput{Title: "g"})
	require.NoError(t, err)

	updated, err := UpdateGoal(user.ID, goal.ID, GoalUpdateInput{Status: models.GoalCompleted})
	require.NoError(t, err)
	require.Equal(t, models.GoalCompleted, updated.Status)
	require.Equal(t, 100, updated.Progress)
}

func TestUpdateGoalRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "u@example.com")

	goal, err := CreateGoal(user.ID, GoalInput{Title: "g"})
	require.NoError(t, err)

	_, err = UpdateGoal(user.ID, goal.ID, GoalUpdateInput{Status: "paused"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeleteGoalCascadesWholeTree(t *testing.T) {
	db := setupTestDB(t)
	user, goal, _, action := seedHierarchy(t, db)

	task, err := CreateTask(user.ID, action.ID, TaskInput{Title: "t"})
	require.NoError(t, err)
	_, err = CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	_, err = CreateReflection(user.ID, task.ID, ReflectionInput{Content: "went well"})
	require.NoError(t, err)

	require.NoError(t, DeleteGoal(user.ID, goal.ID))

	for name, model := range map[string]interface{}{
		"sub_goals":      &models.SubGoal{},
		"actions":        &models.Action{},
		"tasks":          &models.Task{},
		"task_reminders": &models.TaskReminder{},
		"reflections":    &models.Reflection{},
	} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error, name)
		require.Zero(t, n, name)
	}
}
