package repository

import (
	"context"
	"errors"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	domainRepo "github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tailorRepository struct {
	db *gorm.DB
}

// NewTailorRepository creates a new tailor repository
func NewTailorRepository(db *gorm.DB) domainRepo.TailorRepository {
	return &tailorRepository{db: db}
}

func (r *tailorRepository) Create(ctx context.Context, tailor *entity.Tailor) error {
	return r.db.WithContext(ctx).Create(tailor).Error
}

func (r *tailorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	var tailor entity.Tailor
	err := r.db.WithContext(ctx).First(&tailor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tailor, err
}

func (r *tailorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tailor, error) {
	var tailor entity.Tailor
	err := r.db.WithContext(ctx).First(&tailor, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tailor, err
}

func (r *tailorRepository) Update(ctx context.Context, tailor *entity.Tailor) error {
	return r.db.WithContext(ctx).Save(tailor).Error
}

func (r *tailorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Tailor{}, "id = ?", id).Error
}

func (r *tailorRepository) Search(ctx context.Context, params *domainRepo.TailorFilterParams) ([]entity.Tailor, int64, error) {
	var tailors []entity.Tailor
	var total int64

	query := r.searchQuery(ctx, params.Search, params.City, params.DeliveryOnly)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("rating DESC, created_at DESC").
		Find(&tailors).Error

	return tailors, total, err
}

// SearchWithCursor returns tailors using cursor-based pagination
func (r *tailorRepository) SearchWithCursor(ctx context.Context, params *domainRepo.TailorCursorFilterParams) ([]entity.Tailor, error) {
	var tailors []entity.Tailor

	params.Cursor.Validate()
	query := r.searchQuery(ctx, params.Search, params.City, params.DeliveryOnly)

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&tailors).Error

	return tailors, err
}

func (r *tailorRepository) searchQuery(ctx context.Context, search, city string, deliveryOnly bool) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Tailor{})

	if search != "" {
		query = query.Where("shop_name ILIKE ? OR services ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if city != "" {
		query = query.Where("city ILIKE ?", city)
	}
	if deliveryOnly {
		query = query.Where("delivery_available = true")
	}
	return query
}
