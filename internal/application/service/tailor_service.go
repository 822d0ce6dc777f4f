package service

import (
	"context"
	"time"

	"github.com/darzee-app/darzee-api/internal/domain/entity"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/pkg/apperror"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/google/uuid"
)

// TailorService handles tailor shop profile operations
type TailorService struct {
	tailorRepo repository.TailorRepository
}

// NewTailorService creates a new tailor service
func NewTailorService(tailorRepo repository.TailorRepository) *TailorService {
	return &TailorService{tailorRepo: tailorRepo}
}

// GetTailor retrieves a tailor profile by ID
func (s *TailorService) GetTailor(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	tailor, err := s.tailorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tailor == nil {
		return nil, apperror.NewNotFoundError("Tailor")
	}
	return tailor, nil
}

// GetTailorByUser retrieves the tailor profile owned by a user
func (s *TailorService) GetTailorByUser(ctx context.Context, userID uuid.UUID) (*entity.Tailor, error) {
	tailor, err := s.tailorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tailor == nil {
		return nil, apperror.NewNotFoundError("Tailor")
	}
	return tailor, nil
}

// SearchTailors searches tailor shops with page-based pagination
func (s *TailorService) SearchTailors(ctx context.Context, params *repository.TailorFilterParams) (*pagination.PaginatedResult[entity.Tailor], error) {
	tailors, total, err := s.tailorRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tailors, pag), nil
}

// SearchTailorsWithCursor searches tailor shops with cursor-based pagination,
// backing the browse screen's infinite scroll
func (s *TailorService) SearchTailorsWithCursor(ctx context.Context, params *repository.TailorCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Tailor], error) {
	tailors, err := s.tailorRepo.SearchWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(tailors, params.Cursor.Limit,
		func(t entity.Tailor) string { return t.ID.String() },
		func(t entity.Tailor) time.Time { return t.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateTailorInput represents the update shop profile input
type UpdateTailorInput struct {
	UserID            uuid.UUID
	ShopName          string
	Phone             *string
	Street            *string
	City              *string
	Bio               *string
	Services          *string
	DeliveryAvailable *bool
	LogoPath          *string
	TermsText         *string
}

// UpdateTailor updates the shop profile owned by the requesting user
func (s *TailorService) UpdateTailor(ctx context.Context, input *UpdateTailorInput) (*entity.Tailor, error) {
	tailor, err := s.tailorRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if tailor == nil {
		return nil, apperror.NewNotFoundError("Tailor")
	}

	if input.ShopName != "" {
		tailor.ShopName = input.ShopName
	}
	if input.Phone != nil {
		tailor.Phone = input.Phone
	}
	if input.Street != nil {
		tailor.Street = input.Street
	}
	if input.City != nil {
		tailor.City = input.City
	}
	if input.Bio != nil {
		tailor.Bio = input.Bio
	}
	if input.Services != nil {
		tailor.Services = input.Services
	}
	if input.DeliveryAvailable != nil {
		tailor.DeliveryAvailable = *input.DeliveryAvailable
	}
	if input.LogoPath != nil {
		tailor.LogoPath = input.LogoPath
	}
	if input.TermsText != nil {
		tailor.TermsText = input.TermsText
	}

	if err := s.tailorRepo.Update(ctx, tailor); err != nil {
		return nil, err
	}

	return tailor, nil
}
