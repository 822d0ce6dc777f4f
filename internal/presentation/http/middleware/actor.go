package middleware

import (
	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	infraRepo "github.com/darzee-app/darzee-api/internal/infrastructure/repository"
	"github.com/darzee-app/darzee-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorMiddleware resolves the authenticated user into a query actor and adds
// it to the request context so repositories can scope reads. Tailor accounts
// additionally get their shop profile resolved.
func ActorMiddleware(tailorRepo repository.TailorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.Next()
			return
		}
		userID, ok := userIDVal.(uuid.UUID)
		if !ok || userID == uuid.Nil {
			c.Next()
			return
		}

		actor := infraRepo.Actor{
			UserID: userID,
			Role:   enum.RoleCustomer,
		}

		if roleVal, ok := c.Get("user_role"); ok {
			if role, ok := roleVal.(string); ok && role == enum.RoleTailor.String() {
				actor.Role = enum.RoleTailor

				tailor, err := tailorRepo.GetByUserID(c.Request.Context(), userID)
				if err != nil || tailor == nil {
					response.Forbidden(c, "Tailor profile not found")
					c.Abort()
					return
				}
				actor.TailorID = tailor.ID
				c.Set("tailor_id", tailor.ID)
			}
		}

		ctx := infraRepo.WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireTailor ensures the request carries a resolved tailor profile
func RequireTailor() gin.HandlerFunc {
	return func(c *gin.Context) {
		tailorID, exists := c.Get("tailor_id")
		if !exists {
			response.Forbidden(c, "Tailor account required")
			c.Abort()
			return
		}

		id, ok := tailorID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.Forbidden(c, "Tailor account required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetTailorID retrieves the tailor profile ID from gin context
func GetTailorID(c *gin.Context) uuid.UUID {
	tailorID, exists := c.Get("tailor_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := tailorID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
