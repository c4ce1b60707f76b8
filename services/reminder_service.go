package services

import (
	"errors"
	"log"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"github.com/satoshi256kbyte/goal-mandala-sub000/utils"
	"gorm.io/gorm"
)

var ErrReminderNotEditable = errors.New("only pending reminders can be changed")

type ReminderInput struct {
	ReminderAt time.Time `json:"reminder_at" binding:"required"`
}

func ownedReminder(db *gorm.DB, userID, reminderID uint) (*models.TaskReminder, error) {
	var rem models.TaskReminder
	err := db.
		Joins("JOIN tasks ON tasks.id = task_reminders.task_id").
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("task_reminders.id = ? AND goals.user_id = ?", reminderID, userID).
		First(&rem).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rem, nil
}

func CreateReminder(userID, taskID uint, input ReminderInput) (*models.TaskReminder, error) {
	if _, err := ownedTask(config.DB, userID, taskID); err != nil {
		return nil, err
	}
	rem := models.TaskReminder{
		TaskID:     taskID,
		ReminderAt: input.ReminderAt,
		Status:     models.ReminderPending,
	}
	if err := config.DB.Create(&rem).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func ListReminders(userID, taskID uint) ([]models.TaskReminder, error) {
	if _, err := ownedTask(config.DB, userID, taskID); err != nil {
		return nil, err
	}
	var rems []models.TaskReminder
	err := config.DB.
		Where("task_id = ?", taskID).
		Order("reminder_at asc").
		Find(&rems).Error
	return rems, err
}

func UpdateReminder(userID, reminderID uint, input ReminderInput) (*models.TaskReminder, error) {
	rem, err := ownedReminder(config.DB, userID, reminderID)
	if err != nil {
		return nil, err
	}
	if rem.Status != models.ReminderPending {
		return nil, ErrReminderNotEditable
	}
	rem.ReminderAt = input.ReminderAt
	if err := config.DB.Save(rem).Error; err != nil {
		return nil, err
	}
	return rem, nil
}

func CancelReminder(userID, reminderID uint) (*models.TaskReminder, error) {
	rem, err := ownedReminder(config.DB, userID, reminderID)
	if err != nil {
		return nil, err
	}
	if rem.Status != models.ReminderPending {
		return nil, ErrReminderNotEditable
	}
	rem.Status = models.ReminderCancelled
	if err := config.DB.Save(rem).Error; err != nil {
		return nil, err
	}
	return rem, nil
}

// dueReminder carries the joined columns the scheduler needs in one scan.
type dueReminder struct {
	models.TaskReminder
	TaskTitle string
	UserID    uint
	Email     string
}

// ReminderScheduler scans for due pending reminders and delivers them
// over email, push and websocket.
type ReminderScheduler struct {
	db   *gorm.DB
	mail func(to, taskTitle string) error
	stop chan struct{}
}

func NewReminderScheduler(db *gorm.DB) *ReminderScheduler {
	return &ReminderScheduler{
		db:   db,
		mail: utils.SendReminderEmail,
		stop: make(chan struct{}),
	}
}

func (s *ReminderScheduler) Start(interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.DeliverDue(time.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *ReminderScheduler) Stop() {
	close(s.stop)
}

// DeliverDue processes everything pending and due at `now`, returning
// how many reminders it handled (sent or failed).
func (s *ReminderScheduler) DeliverDue(now time.Time) int {
	var due []dueReminder
	err := s.db.Model(&models.TaskReminder{}).
		Select("task_reminders.*, tasks.title AS task_title, goals.user_id AS user_id, users.email AS email").
		Joins("JOIN tasks ON tasks.id = task_reminders.task_id").
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Joins("JOIN users ON users.id = goals.user_id").
		Where("task_reminders.status = ? AND task_reminders.reminder_at <= ?", models.ReminderPending, now).
		Scan(&due).Error
	if err != nil {
		log.Printf("reminder scan failed: %v", err)
		return 0
	}

	for i := range due {
		s.deliver(&due[i], now)
	}
	return len(due)
}

func (s *ReminderScheduler) deliver(d *dueReminder, now time.Time) {
	delivered := false

	if s.mail != nil {
		if err := s.mail(d.Email, d.TaskTitle); err != nil {
			log.Printf("reminder %d email failed: %v", d.ID, err)
		} else {
			delivered = true
		}
	}

	// push + websocket never report back; count them only as side channels
	EmitReminderEvent(d.UserID, &d.TaskReminder, d.TaskTitle)

	status := models.ReminderSent
	if !delivered {
		status = models.ReminderFailed
	}
	updates := map[string]interface{}{"status": status}
	if delivered {
		updates["sent_at"] = now
	}
	if err := s.db.Model(&models.TaskReminder{}).
		Where("id = ? AND status = ?", d.ID, models.ReminderPending).
		Updates(updates).Error; err != nil {
		log.Printf("reminder %d status update failed: %v", d.ID, err)
	}
}
