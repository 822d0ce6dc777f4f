package repository

import (
	"context"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/google/uuid"
)

// TailorRepository defines the interface for tailor profile data operations
type TailorRepository interface {
	Create(ctx context.Context, tailor *entity.Tailor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tailor, error)
	Update(ctx context.Context, tailor *entity.Tailor) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, params *TailorFilterParams) ([]entity.Tailor, int64, error)
	SearchWithCursor(ctx context.Context, params *TailorCursorFilterParams) ([]entity.Tailor, error)
}

// TailorFilterParams contains filtering parameters for page-based tailor search
type TailorFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string
	City         string
	DeliveryOnly bool
}

// TailorCursorFilterParams contains filtering parameters for cursor-based
// tailor search, the server side of the client's infinite scroll
type TailorCursorFilterParams struct {
	Cursor       *pagination.CursorParams
	Search       string
	City         string
	DeliveryOnly bool
}
