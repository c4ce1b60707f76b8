package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateSubGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.SubGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := services.CreateSubGoal(uid, goalID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func ListSubGoals(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	subs, err := services.ListSubGoals(uid, goalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func UpdateSubGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	subGoalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.SubGoalUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := services.UpdateSubGoal(uid, subGoalID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func DeleteSubGoal(c *gin.Context) {
	uid := c.GetUint("userID")
	subGoalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteSubGoal(uid, subGoalID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type reorderReq struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func ReorderSubGoals(c *gin.Context) {
	uid := c.GetUint("userID")
	goalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := services.ReorderSubGoals(uid, goalID, req.From, req.To); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reordered"})
}
