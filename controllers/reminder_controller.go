package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateReminder(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rem, err := services.CreateReminder(uid, taskID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rem)
}

func ListReminders(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rems, err := services.ListReminders(uid, taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rems)
}

func UpdateReminder(c *gin.Context) {
	uid := c.GetUint("userID")
	reminderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rem, err := services.UpdateReminder(uid, reminderID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

func CancelReminder(c *gin.Context) {
	uid := c.GetUint("userID")
	reminderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rem, err := services.CancelReminder(uid, reminderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}
