package storage

import (
	"context"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/google/uuid"
)

// CloudinaryStore keeps documents in Cloudinary as raw assets. The returned
// reference is the asset's secure URL.
type CloudinaryStore struct {
	folder   string
	uploader *uploader.API
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStore, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{folder: folder, uploader: up}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	publicID := "doc_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	result, err := s.uploader.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
