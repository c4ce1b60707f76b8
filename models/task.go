package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskType string

const (
	TaskTypeExecution TaskType = "execution"
	TaskTypeHabit     TaskType = "habit"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskSkipped    TaskStatus = "skipped"
)

type Task struct {
	gorm.Model
	ActionID      uint       `gorm:"index;not null"`
	Title         string     `gorm:"size:255;not null"`
	Type          TaskType   `gorm:"size:20;default:'execution'"`
	Status        TaskStatus `gorm:"size:20;default:'pending'"`
	EstimatedTime *int       // minutes
	CompletedAt   *time.Time

	Reminders   []TaskReminder `gorm:"constraint:OnDelete:CASCADE"`
	Reflections []Reflection   `gorm:"constraint:OnDelete:CASCADE"`
}
