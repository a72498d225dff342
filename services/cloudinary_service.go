package services

import (
	"bytes"
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadResult is the pair of identifiers the rest of the app stores for a
// hosted image.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// UploadImage uploads raw image bytes into a folder and returns the secure
// URL plus the public ID needed to destroy the asset later.
func (s *CloudinaryService) UploadImage(ctx context.Context, data []byte, folder string) (*UploadResult, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}
	if result.SecureURL == "" {
		return nil, errors.New("upload successful but no URL returned")
	}

	return &UploadResult{SecureURL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage deletes an image from Cloudinary using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}
