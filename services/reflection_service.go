package services

import (
	"errors"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReflectionInput struct {
	Content string `json:"content" binding:"required"`
	Rating  *int   `json:"rating"`
}

func ownedReflection(db *gorm.DB, userID, reflectionID uint) (*models.Reflection, error) {
	var ref models.Reflection
	err := db.
		Joins("JOIN tasks ON tasks.id = reflections.task_id").
		Joins("JOIN actions ON actions.id = tasks.action_id").
		Joins("JOIN sub_goals ON sub_goals.id = actions.sub_goal_id").
		Joins("JOIN goals ON goals.id = sub_goals.goal_id").
		Where("reflections.id = ? AND goals.user_id = ?", reflectionID, userID).
		First(&ref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func CreateReflection(userID, taskID uint, input ReflectionInput) (*models.Reflection, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidRating
	}
	if _, err := ownedTask(config.DB, userID, taskID); err != nil {
		return nil, err
	}

	ref := models.Reflection{
		TaskID:  taskID,
		Content: input.Content,
		Rating:  input.Rating,
	}
	if err := config.DB.Create(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func ListReflections(userID, taskID uint) ([]models.Reflection, error) {
	if _, err := ownedTask(config.DB, userID, taskID); err != nil {
		return nil, err
	}
	var refs []models.Reflection
	err := config.DB.
		Where("task_id = ?", taskID).
		Order("created_at desc").
		Find(&refs).Error
	return refs, err
}

func UpdateReflection(userID, reflectionID uint, input ReflectionInput) (*models.Reflection, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidRating
	}
	ref, err := ownedReflection(config.DB, userID, reflectionID)
	if err != nil {
		return nil, err
	}
	if input.Content != "" {
		ref.Content = input.Content
	}
	if input.Rating != nil {
		ref.Rating = input.Rating
	}
	if err := config.DB.Save(ref).Error; err != nil {
		return nil, err
	}
	return ref, nil
}

func DeleteReflection(userID, reflectionID uint) error {
	ref, err := ownedReflection(config.DB, userID, reflectionID)
	if err != nil {
		return err
	}
	return config.DB.Unscoped().Delete(ref).Error
}
