package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"remontkz/internal/domain/entity"
	"remontkz/internal/domain/repository"
	"remontkz/internal/usecase"
	"remontkz/pkg/response"
)

type RequestHandler struct {
	requestUseCase *usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
	}
}

type createRequestRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress completed"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	clientID := c.Get("uid").(string)

	request, err := h.requestUseCase.CreateRequest(c.Request().Context(), clientID, usecase.CreateRequestInput{
		ListingID: req.ListingID,
		Message:   req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *RequestHandler) UpdateRequestStatus(c echo.Context) error {
	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	companyID := c.Get("uid").(string)

	request, err := h.requestUseCase.Transition(c.Request().Context(), companyID, c.Param("id"), entity.RequestStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	actorID := c.Get("uid").(string)

	request, err := h.requestUseCase.GetVisible(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *RequestHandler) ListRequests(c echo.Context) error {
	actor, ok := c.Get("actor").(entity.Actor)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	requests, err := h.requestUseCase.ListVisible(c.Request().Context(), actor, repository.RequestFilter{
		Status:    entity.RequestStatus(c.QueryParam("status")),
		ListingID: c.QueryParam("listingId"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}
