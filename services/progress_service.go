package services

import (
	"errors"
	"math"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

// Progress rolls up the hierarchy: an action is the percentage of its
// tasks completed, a sub-goal the mean of its actions, a goal the mean
// of its sub-goals. Every write happens inside the caller's transaction
// so a task status change and the three recomputed rows land together.

func recomputeActionProgress(tx *gorm.DB, actionID uint) error {
	var action models.Action
	if err := tx.First(&action, actionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // action gone, nothing to roll up
		}
		return err
	}

	var total, done int64
	if err := tx.Model(&models.Task{}).
		Where("action_id = ?", actionID).
		Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Task{}).
		Where("action_id = ? AND status = ?", actionID, models.TaskCompleted).
		Count(&done).Error; err != nil {
		return err
	}

	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(done) / float64(total) * 100))
	}
	if err := tx.Model(&models.Action{}).
		Where("id = ?", actionID).
		Update("progress", progress).Error; err != nil {
		return err
	}

	return recomputeSubGoalProgress(tx, action.SubGoalID)
}

func recomputeSubGoalProgress(tx *gorm.DB, subGoalID uint) error {
	var sub models.SubGoal
	if err := tx.First(&sub, subGoalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var avg float64
	if err := tx.Model(&models.Action{}).
		Where("sub_goal_id = ?", subGoalID).
		Select("COALESCE(AVG(progress), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.SubGoal{}).
		Where("id = ?", subGoalID).
		Update("progress", int(math.Round(avg))).Error; err != nil {
		return err
	}

	return recomputeGoalProgress(tx, sub.GoalID)
}

func recomputeGoalProgress(tx *gorm.DB, goalID uint) error {
	var goal models.Goal
	if err := tx.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	var avg float64
	if err := tx.Model(&models.SubGoal{}).
		Where("goal_id = ?", goalID).
		Select("COALESCE(AVG(progress), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}
	progress := int(math.Round(avg))

	updates := map[string]interface{}{"progress": progress}
	// archived goals keep their status; the rest track progress
	if goal.Status != models.GoalArchived {
		switch {
		case progress >= 100:
			updates["status"] = models.GoalCompleted
		case progress > 0 && goal.Status == models.GoalNotStarted:
			updates["status"] = models.GoalInProgress
		}
	}

	return tx.Model(&models.Goal{}).
		Where("id = ?", goalID).
		Updates(updates).Error
}
