package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"remontkz/internal/usecase"
	"remontkz/pkg/response"
	"remontkz/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingImageRequest struct {
	URL          string `json:"url" validate:"required,url"`
	DisplayOrder int    `json:"display_order"`
}

type listingRequest struct {
	Name             string                `json:"name" validate:"required"`
	Category         string                `json:"category" validate:"required,oneof=automobiles real-estate other"`
	Description      string                `json:"description" validate:"required"`
	PriceFrom        float64               `json:"price_from" validate:"required,gt=0"`
	PriceTo          float64               `json:"price_to" validate:"required,gt=0"`
	City             string                `json:"city"`
	Licensed         bool                  `json:"licensed"`
	AvailabilityDays int                   `json:"availability_days" validate:"omitempty,gt=0"`
	Urgency          string                `json:"urgency" validate:"omitempty,oneof=low medium high"`
	Tags             []string              `json:"tags"`
	CustomAttributes map[string]string     `json:"custom_attributes"`
	Active           *bool                 `json:"active"`
	Images           []listingImageRequest `json:"images" validate:"omitempty,dive"`
}

func (r listingRequest) toInput() (usecase.ListingInput, []usecase.ListingImageInput) {
	images := make([]usecase.ListingImageInput, len(r.Images))
	for i, img := range r.Images {
		images[i] = usecase.ListingImageInput{
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}

	return usecase.ListingInput{
		Name:             r.Name,
		Category:         r.Category,
		Description:      r.Description,
		PriceFrom:        r.PriceFrom,
		PriceTo:          r.PriceTo,
		City:             r.City,
		Licensed:         r.Licensed,
		AvailabilityDays: r.AvailabilityDays,
		Urgency:          r.Urgency,
		Tags:             r.Tags,
		CustomAttributes: r.CustomAttributes,
		Active:           r.Active,
	}, images
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)
	input, images := req.toInput()

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), companyID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)
	input, images := req.toInput()

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), companyID, input, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeactivateListing(c echo.Context) error {
	companyID := c.Get("uid").(string)

	if err := h.listingUseCase.DeactivateListing(c.Request().Context(), c.Param("id"), companyID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListingByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	activeOnly := c.QueryParam("active") != "false"

	listings, total, err := h.listingUseCase.ListListings(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("city"),
		c.QueryParam("licensed") == "true",
		activeOnly,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) MyListings(c echo.Context) error {
	companyID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListByCompanyID(c.Request().Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}
