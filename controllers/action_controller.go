package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateAction(c *gin.Context) {
	uid := c.GetUint("userID")
	subGoalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := services.CreateAction(uid, subGoalID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

func ListActions(c *gin.Context) {
	uid := c.GetUint("userID")
	subGoalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	actions, err := services.ListActions(uid, subGoalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

func UpdateAction(c *gin.Context) {
	uid := c.GetUint("userID")
	actionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ActionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := services.UpdateAction(uid, actionID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

func DeleteAction(c *gin.Context) {
	uid := c.GetUint("userID")
	actionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteAction(uid, actionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ReorderActions(c *gin.Context) {
	uid := c.GetUint("userID")
	subGoalID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := services.ReorderActions(uid, subGoalID, req.From, req.To); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reordered"})
}
