package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB wires config.DB to a per-test in-memory sqlite database
// with the full schema migrated and FK enforcement on, so the cascade
// constraints behave like Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	// _pragma goes in the DSN so every pooled connection enforces FKs
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.SubGoal{},
		&models.Action{},
		&models.Task{},
		&models.TaskReminder{},
		&models.Reflection{},
		&models.UserDevice{},
	))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x", Name: "Tester"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedHierarchy builds user → goal → sub-goal(0) → action(0) so task
// tests can start from a complete chain.
func seedHierarchy(t *testing.T, db *gorm.DB) (*models.User, *models.Goal, *models.SubGoal, *models.Action) {
	t.Helper()

	user := seedUser(t, db, "owner@example.com")
	goal := &models.Goal{UserID: user.ID, Title: "Become a backend lead", Status: models.GoalNotStarted}
	require.NoError(t, db.Create(goal).Error)

	sub := &models.SubGoal{GoalID: goal.ID, Title: "Learn distributed systems", Position: 0}
	require.NoError(t, db.Create(sub).Error)

	action := &models.Action{SubGoalID: sub.ID, Title: "Read DDIA", Position: 0}
	require.NoError(t, db.Create(action).Error)

	return user, goal, sub, action
}
