package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID retrieves the authenticated user's ID from the gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail retrieves the authenticated user's email from the gin context
func GetUserEmail(c *gin.Context) string {
	emailValue, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	email, ok := emailValue.(string)
	if !ok {
		return ""
	}
	return email
}

// GetUserRole retrieves the authenticated user's role from the gin context
func GetUserRole(c *gin.Context) string {
	roleValue, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleValue.(string)
	if !ok {
		return ""
	}
	return role
}
