package models

import (
	"time"

	"gorm.io/gorm"
)

type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderFailed    ReminderStatus = "failed"
	ReminderCancelled ReminderStatus = "cancelled"
)

type TaskReminder struct {
	gorm.Model
	TaskID     uint           `gorm:"index;not null"`
	ReminderAt time.Time      `gorm:"index;not null"`
	Status     ReminderStatus `gorm:"size:20;index;default:'pending'"`
	SentAt     *time.Time
}
