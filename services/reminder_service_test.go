package services

import (
	"errors"
	"testing"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"

	"github.com/stretchr/testify/require"
)

func seedTask(t *testing.T, userID, actionID uint) *models.Task {
	t.Helper()
	task, err := CreateTask(userID, actionID, TaskInput{Title: "call the dentist"})
	require.NoError(t, err)
	return task
}

func TestCreateAndListReminders(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	later := time.Now().Add(2 * time.Hour)
	sooner := time.Now().Add(time.Hour)

	_, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: later})
	require.NoError(t, err)
	rem, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: sooner})
	require.NoError(t, err)
	require.Equal(t, models.ReminderPending, rem.Status)
	require.Nil(t, rem.SentAt)

	rems, err := ListReminders(user.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, rems, 2)
	require.Equal(t, rem.ID, rems[0].ID) // soonest first
}

func TestReminderScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)
	stranger := seedUser(t, db, "stranger@example.com")

	_, err := CreateReminder(stranger.ID, task.ID, ReminderInput{ReminderAt: time.Now()})
	require.ErrorIs(t, err, ErrNotFound)

	rem, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now()})
	require.NoError(t, err)

	_, err = CancelReminder(stranger.ID, rem.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOnlyPendingRemindersAreEditable(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	rem, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	cancelled, err := CancelReminder(user.ID, rem.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReminderCancelled, cancelled.Status)

	_, err = UpdateReminder(user.ID, rem.ID, ReminderInput{ReminderAt: time.Now()})
	require.ErrorIs(t, err, ErrReminderNotEditable)

	_, err = CancelReminder(user.ID, rem.ID)
	require.ErrorIs(t, err, ErrReminderNotEditable)
}

func TestDeliverDueMarksSent(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	due, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	future, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	var gotTo, gotTitle string
	s := NewReminderScheduler(db)
	s.mail = func(to, taskTitle string) error {
		gotTo, gotTitle = to, taskTitle
		return nil
	}

	require.Equal(t, 1, s.DeliverDue(time.Now()))
	require.Equal(t, user.Email, gotTo)
	require.Equal(t, task.Title, gotTitle)

	var sent models.TaskReminder
	require.NoError(t, db.First(&sent, due.ID).Error)
	require.Equal(t, models.ReminderSent, sent.Status)
	require.NotNil(t, sent.SentAt)

	var untouched models.TaskReminder
	require.NoError(t, db.First(&untouched, future.ID).Error)
	require.Equal(t, models.ReminderPending, untouched.Status)

	// second sweep finds nothing
	require.Zero(t, s.DeliverDue(time.Now()))
}

func TestDeliverDueSkipsCancelled(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	rem, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	_, err = CancelReminder(user.ID, rem.ID)
	require.NoError(t, err)

	s := NewReminderScheduler(db)
	s.mail = func(to, taskTitle string) error {
		t.Fatal("cancelled reminder must not be delivered")
		return nil
	}
	require.Zero(t, s.DeliverDue(time.Now()))
}

func TestDeliverDueMarksFailedWhenMailErrors(t *testing.T) {
	db := setupTestDB(t)
	user, _, _, action := seedHierarchy(t, db)
	task := seedTask(t, user.ID, action.ID)

	rem, err := CreateReminder(user.ID, task.ID, ReminderInput{ReminderAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)

	s := NewReminderScheduler(db)
	s.mail = func(to, taskTitle string) error { return errors.New("ses throttled") }

	require.Equal(t, 1, s.DeliverDue(time.Now()))

	var failed models.TaskReminder
	require.NoError(t, db.First(&failed, rem.ID).Error)
	require.Equal(t, models.ReminderFailed, failed.Status)
	require.Nil(t, failed.SentAt)
}
