package models

import "gorm.io/gorm"

// SubGoal occupies one of the eight cells around the goal.
// Position is the cell index, unique within the goal.
type SubGoal struct {
	gorm.Model
	GoalID      uint   `gorm:"uniqueIndex:idx_sub_goals_goal_position;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Position    int    `gorm:"uniqueIndex:idx_sub_goals_goal_position;not null"` // 0..7
	Progress    int    `gorm:"default:0"`

	Actions []Action `gorm:"constraint:OnDelete:CASCADE"`
}
