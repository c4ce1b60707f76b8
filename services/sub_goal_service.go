package services

import (
	"errors"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

// Mandala cells go around the center, eight per ring level.
const MaxCellPosition = 7

var ErrCellOccupied = errors.New("position already occupied")
var ErrInvalidPosition = errors.New("position must be between 0 and 7")

type SubGoalInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

func ownedGoal(db *gorm.DB, userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func ownedSubGoal(db *gorm.DB, userID, subGoalID uint) (*models.SubGoal, error) {
	var sub models.SubGoal
	err := db.
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("sub_goals.id = ? AND goals.user_id = ?", subGoalID, userID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func CreateSubGoal(userID, goalID uint, input SubGoalInput) (*models.SubGoal, error) {
	if input.Position < 0 || input.Position > MaxCellPosition {
		return nil, ErrInvalidPosition
	}
	if _, err := ownedGoal(config.DB, userID, goalID); err != nil {
		return nil, err
	}

	var count int64
	if err := config.DB.Model(&models.SubGoal{}).
		Where("goal_id = ? AND position = ?", goalID, input.Position).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCellOccupied
	}

	sub := models.SubGoal{
		GoalID:      goalID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		// A fresh cell starts at 0 and dilutes the goal average.
		return recomputeGoalProgress(tx, goalID)
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func ListSubGoals(userID, goalID uint) ([]models.SubGoal, error) {
	if _, err := ownedGoal(config.DB, userID, goalID); err != nil {
		return nil, err
	}
	var subs []models.SubGoal
	err := config.DB.
		Where("goal_id = ?", goalID).
		Order("position asc").
		Find(&subs).Error
	return subs, err
}

type SubGoalUpdateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func UpdateSubGoal(userID, subGoalID uint, input SubGoalUpdateInput) (*models.SubGoal, error) {
	sub, err := ownedSubGoal(config.DB, userID, subGoalID)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		sub.Title = input.Title
	}
	if input.Description != nil {
		sub.Description = *input.Description
	}
	if err := config.DB.Save(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func DeleteSubGoal(userID, subGoalID uint) error {
	sub, err := ownedSubGoal(config.DB, userID, subGoalID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(sub).Error; err != nil {
			return err
		}
		return recomputeGoalProgress(tx, sub.GoalID)
	})
}

// ReorderSubGoals swaps the cells at positions a and b of one goal.
// Empty cells are allowed on either side. The swap goes through a
// parking position so the (goal_id, position) unique index never
// sees a duplicate mid-transaction.
func ReorderSubGoals(userID, goalID uint, a, b int) error {
	if a < 0 || a > MaxCellPosition || b < 0 || b > MaxCellPosition {
		return ErrInvalidPosition
	}
	if a == b {
		return nil
	}
	if _, err := ownedGoal(config.DB, userID, goalID); err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		const parked = -1
		if err := tx.Model(&models.SubGoal{}).
			Where("goal_id = ? AND position = ?", goalID, a).
			Update("position", parked).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SubGoal{}).
			Where("goal_id = ? AND position = ?", goalID, b).
			Update("position", a).Error; err != nil {
			return err
		}
		return tx.Model(&models.SubGoal{}).
			Where("goal_id = ? AND position = ?", goalID, parked).
			Update("position", b).Error
	})
}
