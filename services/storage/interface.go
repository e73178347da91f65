package storage

import (
	"context"

	"eventparadise/config"
	"eventparadise/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// StorageService stores uploaded files (event banners, guest photos) and
// returns permanent identifiers that resolve to public URLs.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}

// NewFromConfig returns a Cloudinary-backed service, or nil when no
// Cloudinary URL is configured. Callers must treat a nil service as
// "uploads disabled".
func NewFromConfig() StorageService {
	if config.AppConfig.CloudinaryURL == "" {
		return nil
	}
	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		utils.GetLogger().Error("Failed to initialize Cloudinary, uploads disabled", zap.Error(err))
		return nil
	}
	return &CloudinaryStorage{cld: cld}
}
