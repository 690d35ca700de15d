package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryEnabled reports whether a Cloudinary account is configured.
// When it is not, product images stay on local disk.
func CloudinaryEnabled() bool {
	return os.Getenv("CLOUDINARY_URL") != ""
}

// UploadToCloudinary pushes a local image to Cloudinary and returns its
// public URL.
func UploadToCloudinary(localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := cloudinary.New()
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: "products",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return resp.SecureURL, nil
}
