package controllers

import (
	"net/http"

	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateReflection(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ReflectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := services.CreateReflection(uid, taskID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

func ListReflections(c *gin.Context) {
	uid := c.GetUint("userID")
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	refs, err := services.ListReflections(uid, taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func UpdateReflection(c *gin.Context) {
	uid := c.GetUint("userID")
	reflectionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ReflectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := services.UpdateReflection(uid, reflectionID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

func DeleteReflection(c *gin.Context) {
	uid := c.GetUint("userID")
	reflectionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteReflection(uid, reflectionID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
