package services

import (
	"errors"
	"fmt"

	"github.com/satoshi256kbyte/goal-mandala-sub000/config"
	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"github.com/satoshi256kbyte/goal-mandala-sub000/utils"
)

type ProfileInput struct {
	Name           string `json:"name"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	JobType        string `json:"job_type"`
	Position       string `json:"position"`
	ProfilePicture string `json:"profile_picture"` // data-URI, uploaded to S3
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"industry":        user.Industry,
		"company_size":    user.CompanySize,
		"job_type":        user.JobType,
		"position":        user.Position,
		"profile_picture": user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Industry != "" {
		user.Industry = input.Industry
	}
	if input.CompanySize != "" {
		user.CompanySize = input.CompanySize
	}
	if input.JobType != "" {
		user.JobType = input.JobType
	}
	if input.Position != "" {
		user.Position = input.Position
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
