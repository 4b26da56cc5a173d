package storage

import (
	"context"
	"fmt"

	"medcrm/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores uploaded media, currently doctor profile photos.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService connects to Cloudinary using the configured URL.
func NewStorageService() (StorageService, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("storage service initialization error: CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &StorageServiceImpl{cld: cld}, nil
}
