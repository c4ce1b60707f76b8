package models

import (
	"time"

	"gorm.io/gorm"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalArchived   GoalStatus = "archived"
)

// Goal is the center cell of a mandala chart. Its eight surrounding
// sub-goals live in sub_goals with positions 0..7.
type Goal struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Deadline    *time.Time
	Status      GoalStatus `gorm:"size:20;default:'not_started'"`
	Progress    int        `gorm:"default:0"` // 0..100, derived from sub-goals

	SubGoals []SubGoal `gorm:"constraint:OnDelete:CASCADE"`
}
