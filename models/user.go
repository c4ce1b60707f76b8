package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	Name           string
	Industry       string
	CompanySize    string
	JobType        string
	Position       string
	ProfilePicture string
	Disabled       bool

	ResetToken    string
	ResetTokenExp time.Time

	Goals []Goal `gorm:"constraint:OnDelete:CASCADE"`
}
