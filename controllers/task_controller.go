package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/models"
	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateTask(c *gin.Context) {
	uid := c.GetUint("userID")
	actionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := services.CreateTask(uid, actionID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func ListTasks(c *gin.Context) {
	uid := c.GetUint("userID")
	actionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasks, err := services.ListTasks(uid, actionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func UpdateTask(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.TaskUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := services.UpdateTask(uid, taskID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type taskStatusReq struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

func UpdateTaskStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req taskStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	task, err := services.UpdateTaskStatus(uid, taskID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteTask(uid, taskID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
