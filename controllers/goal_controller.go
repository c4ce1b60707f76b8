package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateGoal(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func ListGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goals, err := services.ListGoals(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func GetGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := services.GetGoal(uid, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.GoalUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoal(uid, goalID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func DeleteGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteGoal(uid, goalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
