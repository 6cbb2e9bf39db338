package handler

import (
	"github.com/labstack/echo/v4"

	"remontkz/internal/infrastructure/storage"
	"remontkz/pkg/errors"
	"remontkz/pkg/response"
)

// MediaHandler uploads chat media (images, voice notes) and hands back the
// durable URL the caller then attaches to an image/audio message.
type MediaHandler struct {
	storageClient *storage.CloudStorageClient
	maxBytes      int64
}

func NewMediaHandler(storageClient *storage.CloudStorageClient, maxBytes int64) *MediaHandler {
	return &MediaHandler{
		storageClient: storageClient,
		maxBytes:      maxBytes,
	}
}

func (h *MediaHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.Validation("A file is required", err))
	}

	if fileHeader.Size > h.maxBytes {
		return response.Error(c, errors.Validation("File exceeds the upload size limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.AllowedContentType(contentType) {
		return response.Error(c, errors.Validation("Unsupported file type", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	url, err := h.storageClient.UploadFile(c.Request().Context(), file, contentType, "chat-media")
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store file", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
