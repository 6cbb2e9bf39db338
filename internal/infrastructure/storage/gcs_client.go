package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"audio/mpeg": ".mp3",
	"audio/ogg":  ".ogg",
	"audio/webm": ".webm",
}

// AllowedContentType reports whether the content type may be stored as chat
// media.
func AllowedContentType(contentType string) bool {
	_, ok := extensions[contentType]
	return ok
}

// UploadFile stores the file and returns its durable public URL.
func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}

	objectName := fmt.Sprintf("%s/%s-%s%s", folder, uuid.New().String(), time.Now().Format("20060102150405"), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, file); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
