package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// ErrFileTooLarge is returned before any bytes leave the process.
var ErrFileTooLarge = errors.New("file exceeds upload size limit")

// CloudinaryUploader streams in-memory buffers to Cloudinary and returns the
// public secure URL of the stored asset.
type CloudinaryUploader struct {
	cld      *cloudinary.Cloudinary
	folder   string
	maxBytes int64
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string, maxBytes int64) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary init")
	}
	return &CloudinaryUploader{cld: cld, folder: folder, maxBytes: maxBytes}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte) (string, error) {
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return "", errors.Wrapf(ErrFileTooLarge, "%d bytes, limit %d", len(data), u.maxBytes)
	}

	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload")
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
