package handler

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/usecase"
	"remontkz/pkg/response"
	"remontkz/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	clientID := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), clientID, c.Param("id"), usecase.CreateReviewInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListByListing(c.Request().Context(), c.Param("id"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}
