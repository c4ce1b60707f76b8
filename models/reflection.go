package models

import "gorm.io/gorm"

type Reflection struct {
	gorm.Model
	TaskID  uint   `gorm:"index;not null"`
	Content string `gorm:"type:text;not null"`
	Rating  *int   // 1..5, optional
}
