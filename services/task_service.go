package services

import (
	"errors"
	"time"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidTaskType  = errors.New("invalid task type")
	ErrNegativeEstimate = errors.New("estimated_time must not be negative")
)

type TaskInput struct {
	Title         string          `json:"title" binding:"required"`
	Type          models.TaskType `json:"type"`
	EstimatedTime *int            `json:"estimated_time"` // minutes
}

func ownedTask(db *gorm.DB, userID, taskID uint) (*models.Task, error) {
	var task models.Task
	err := db.
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("tasks.id = ? AND goals.user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func CreateTask(userID, actionID uint, input TaskInput) (*models.Task, error) {
	if _, err := ownedAction(config.DB, userID, actionID); err != nil {
		return nil, err
	}

	typ := input.Type
	if typ == "" {
		typ = models.TaskTypeExecution
	}
	if typ != models.TaskTypeExecution && typ != models.TaskTypeHabit {
		return nil, ErrInvalidTaskType
	}
	if input.EstimatedTime != nil && *input.EstimatedTime < 0 {
		return nil, ErrNegativeEstimate
	}

	task := models.Task{
		ActionID:      actionID,
		Title:         input.Title,
		Type:          typ,
		Status:        models.TaskPending,
		EstimatedTime: input.EstimatedTime,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		return recomputeActionProgress(tx, actionID)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func ListTasks(userID, actionID uint) ([]models.Task, error) {
	if _, err := ownedAction(config.DB, userID, actionID); err != nil {
		return nil, err
	}
	var tasks []models.Task
	err := config.DB.
		Where("action_id = ?", actionID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

type TaskUpdateInput struct {
	Title         string          `json:"title"`
	Type          models.TaskType `json:"type"`
	EstimatedTime *int            `json:"estimated_time"`
}

func UpdateTask(userID, taskID uint, input TaskUpdateInput) (*models.Task, error) {
	task, err := ownedTask(config.DB, userID, taskID)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Type != "" {
		if input.Type != models.TaskTypeExecution && input.Type != models.TaskTypeHabit {
			return nil, ErrInvalidTaskType
		}
		task.Type = input.Type
	}
	if input.EstimatedTime != nil {
		if *input.EstimatedTime < 0 {
			return nil, ErrNegativeEstimate
		}
		task.EstimatedTime = input.EstimatedTime
	}
	if err := config.DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTaskStatus changes the task status, stamps or clears
// completed_at and recomputes the progress roll-up in one transaction.
func UpdateTaskStatus(userID, taskID uint, status models.TaskStatus) (*models.Task, error) {
	switch status {
	case models.TaskPending, models.TaskInProgress, models.TaskCompleted, models.TaskSkipped:
	default:
		return nil, ErrInvalidStatus
	}

	task, err := ownedTask(config.DB, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == status {
		return task, nil
	}

	task.Status = status
	if status == models.TaskCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}
		return recomputeActionProgress(tx, task.ActionID)
	})
	if err != nil {
		return nil, err
	}

	EmitProgressEvent(userID, task.ActionID)
	return task, nil
}

func DeleteTask(userID, taskID uint) error {
	task, err := ownedTask(config.DB, userID, taskID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(task).Error; err != nil {
			return err
		}
		return recomputeActionProgress(tx, task.ActionID)
	})
}
