package handler

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/iterator"
)

type HealthHandler struct {
	firestoreClient *firestore.Client
	environment     string
}

func NewHealthHandler(firestoreClient *firestore.Client, environment string) *HealthHandler {
	return &HealthHandler{
		firestoreClient: firestoreClient,
		environment:     environment,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	datastore := "ok"
	iter := h.firestoreClient.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		datastore = "unreachable"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": h.environment,
		"datastore":   datastore,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}
