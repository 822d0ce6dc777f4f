package handler

import (
	"strconv"

	"github.com/darzee-app/darzee-api/internal/application/service"
	"github.com/darzee-app/darzee-api/internal/domain/repository"
	"github.com/darzee-app/darzee-api/internal/presentation/http/dto/request"
	"github.com/darzee-app/darzee-api/internal/presentation/http/dto/response"
	"github.com/darzee-app/darzee-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TailorHandler handles tailor shop HTTP requests
type TailorHandler struct {
	tailorService *service.TailorService
}

// NewTailorHandler creates a new tailor handler
func NewTailorHandler(tailorService *service.TailorService) *TailorHandler {
	return &TailorHandler{tailorService: tailorService}
}

func searchTerm(c *gin.Context) string {
	if q := c.Query("q"); q != "" {
		return q
	}
	return c.Query("search")
}

// Search handles browsing tailor shops (supports both page-based and cursor-based pagination)
func (h *TailorHandler) Search(c *gin.Context) {
	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.searchWithCursor(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.TailorFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:       searchTerm(c),
		City:         c.Query("city"),
		DeliveryOnly: c.Query("delivery") == "true",
	}

	result, err := h.tailorService.SearchTailors(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tailors retrieved successfully", result)
}

// searchWithCursor handles browsing tailor shops with cursor-based pagination
func (h *TailorHandler) searchWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	params := &repository.TailorCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search:       searchTerm(c),
		City:         c.Query("city"),
		DeliveryOnly: c.Query("delivery") == "true",
	}

	result, err := h.tailorService.SearchTailorsWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Tailors retrieved successfully", result)
}

// Get handles getting a single tailor shop profile
func (h *TailorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tailor ID")
		return
	}

	tailor, err := h.tailorService.GetTailor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tailor retrieved successfully", tailor)
}

// GetMine handles getting the requesting user's own shop profile
func (h *TailorHandler) GetMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	tailor, err := h.tailorService.GetTailorByUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile retrieved successfully", tailor)
}

// Update handles updating the requesting user's own shop profile
func (h *TailorHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateTailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tailor, err := h.tailorService.UpdateTailor(c.Request.Context(), &service.UpdateTailorInput{
		UserID:            *userID,
		ShopName:          req.ShopName,
		Phone:             req.Phone,
		Street:            req.Street,
		City:              req.City,
		Bio:               req.Bio,
		Services:          req.Services,
		DeliveryAvailable: req.DeliveryAvailable,
		LogoPath:          req.LogoPath,
		TermsText:         req.TermsText,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop profile updated successfully", tailor)
}
