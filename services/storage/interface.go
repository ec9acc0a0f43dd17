package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService manages media assets for the site: profile pictures,
// shoutout thumbnails and any images referenced by content records.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}

// CloudinaryStorageService is the production implementation.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}
