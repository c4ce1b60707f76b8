package services

import (
	"errors"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

type ActionInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

func ownedAction(db *gorm.DB, userID, actionID uint) (*models.Action, error) {
	var action models.Action
	err := db.
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("actions.id = ? AND goals.user_id = ?", actionID, userID).
		First(&action).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &action, nil
}

func CreateAction(userID, subGoalID uint, input ActionInput) (*models.Action, error) {
	if input.Position < 0 || input.Position > MaxCellPosition {
		return nil, ErrInvalidPosition
	}
	if _, err := ownedSubGoal(config.DB, userID, subGoalID); err != nil {
		return nil, err
	}

	var count int64
	if err := config.DB.Model(&models.Action{}).
		Where("sub_goal_id = ? AND position = ?", subGoalID, input.Position).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCellOccupied
	}

	action := models.Action{
		SubGoalID:   subGoalID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&action).Error; err != nil {
			return err
		}
		// A fresh cell starts at 0 and dilutes the sub-goal average.
		return recomputeSubGoalProgress(tx, subGoalID)
	})
	if err != nil {
		return nil, err
	}
	return &action, nil
}

func ListActions(userID, subGoalID uint) ([]models.Action, error) {
	if _, err := ownedSubGoal(config.DB, userID, subGoalID); err != nil {
		return nil, err
	}
	var actions []models.Action
	err := config.DB.
		Where("sub_goal_id = ?", subGoalID).
		Order("position asc").
		Find(&actions).Error
	return actions, err
}

type ActionUpdateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func UpdateAction(userID, actionID uint, input ActionUpdateInput) (*models.Action, error) {
	action, err := ownedAction(config.DB, userID, actionID)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		action.Title = input.Title
	}
	if input.Description != nil {
		action.Description = *input.Description
	}
	if err := config.DB.Save(action).Error; err != nil {
		return nil, err
	}
	return action, nil
}

func DeleteAction(userID, actionID uint) error {
	action, err := ownedAction(config.DB, userID, actionID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(action).Error; err != nil {
			return err
		}
		return recomputeSubGoalProgress(tx, action.SubGoalID)
	})
}

// ReorderActions swaps two cells of one sub-goal, same parking trick
// as ReorderSubGoals.
func ReorderActions(userID, subGoalID uint, a, b int) error {
	if a < 0 || a > MaxCellPosition || b < 0 || b > MaxCellPosition {
		return ErrInvalidPosition
	}
	if a == b {
		return nil
	}
	if _, err := ownedSubGoal(config.DB, userID, subGoalID); err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		const parked = -1
		if err := tx.Model(&models.Action{}).
			Where("sub_goal_id = ? AND position = ?", subGoalID, a).
			Update("position", parked).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Action{}).
			Where("sub_goal_id = ? AND position = ?", subGoalID, b).
			Update("position", a).Error; err != nil {
			return err
		}
		return tx.Model(&models.Action{}).
			Where("sub_goal_id = ? AND position = ?", subGoalID, parked).
			Update("position", b).Error
	})
}
