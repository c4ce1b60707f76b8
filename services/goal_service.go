package services

import (
	"errors"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidStatus = errors.New("invalid status")
)

type GoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

func CreateGoal(userID uint, input GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Status:      models.GoalNotStarted,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoal(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.
		Preload("SubGoals", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error
	return goals, err
}

type GoalUpdateInput struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Deadline    *time.Time        `json:"deadline"`
	Status      models.GoalStatus `json:"status"`
}

func UpdateGoal(userID, goalID uint, input GoalUpdateInput) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		goal.Title = input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Status != "" {
		switch input.Status {
		case models.GoalNotStarted, models.GoalInProgress, models.GoalCompleted, models.GoalArchived:
			goal.Status = input.Status
		default:
			return nil, ErrInvalidStatus
		}
		if goal.Status == models.GoalCompleted {
			goal.Progress = 100
		}
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes the goal and, through the FK cascades, every
// sub-goal, action, task, reminder and reflection under it.
func DeleteGoal(userID, goalID uint) error {
	var goal models.Goal
	err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	// hard delete so the DB cascade fires
	return config.DB.Unscoped().Delete(&goal).Error
}
