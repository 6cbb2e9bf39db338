package router

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/adapter/api/handler"
	"remontkz/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	listingHandler := handler.GetListingHandler()
	reviewHandler := handler.GetReviewHandler()

	// Public browse
	e.GET("/v1/listings", listingHandler.ListListings)
	e.GET("/v1/listings/:id", listingHandler.GetListing)
	e.GET("/v1/listings/:id/reviews", reviewHandler.ListReviews)

	// Company-managed catalog
	company := e.Group("/v1/listings")
	company.Use(authMiddleware.Authenticate)
	company.Use(roleMiddleware.ResolveActor)
	company.Use(roleMiddleware.CompanyOnly)

	company.POST("", listingHandler.CreateListing)
	company.PUT("/:id", listingHandler.UpdateListing)
	company.DELETE("/:id", listingHandler.DeactivateListing)

	myListings := e.Group("/v1/my/listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.Use(roleMiddleware.ResolveActor)
	myListings.Use(roleMiddleware.CompanyOnly)

	myListings.GET("", listingHandler.MyListings)

	// Reviews are written by clients only
	reviews := e.Group("/v1/listings/:id/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.Use(roleMiddleware.ResolveActor)
	reviews.Use(roleMiddleware.ClientOnly)

	reviews.POST("", reviewHandler.CreateReview)
}
