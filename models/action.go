package models

import "gorm.io/gorm"

// Action is one of the eight cells around a sub-goal.
type Action struct {
	gorm.Model
	SubGoalID   uint   `gorm:"uniqueIndex:idx_actions_sub_goal_position;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Position    int    `gorm:"uniqueIndex:idx_actions_sub_goal_position;not null"` // 0..7
	Progress    int    `gorm:"default:0"`

	Tasks []Task `gorm:"constraint:OnDelete:CASCADE"`
}
