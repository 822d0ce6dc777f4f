package repository

import (
	"context"

	"github.com/darzee-app/darzee-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// ActorKey is the context key for the authenticated actor
	ActorKey ctxKey = "actor"
)

// Actor identifies the authenticated account a query runs on behalf of.
// Tailors additionally carry their shop profile ID.
type Actor struct {
	UserID   uuid.UUID
	Role     enum.Role
	TailorID uuid.UUID
}

// WithActor adds the authenticated actor to the context
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// GetActor extracts the authenticated actor from the context
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(Actor)
	return actor, ok
}

// OrderAccessScope returns a GORM scope that restricts order queries to the
// requesting actor: customers see their own orders, tailors the orders placed
// with their shop. A missing actor fails safe and returns no rows.
func OrderAccessScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		actor, ok := GetActor(ctx)
		if !ok {
			return db.Where("1 = 0")
		}
		if actor.Role == enum.RoleTailor {
			return db.Where("tailor_id = ?", actor.TailorID)
		}
		return db.Where("customer_id = ?", actor.UserID)
	}
}
