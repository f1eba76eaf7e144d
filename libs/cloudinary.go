package libs

import (
	"context"
	"fmt"
	"path/filepath"
	"sticker-shop/config"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadToCloudinary pushes a locally stored media asset to Cloudinary
// and returns its secure URL. The local public path is the one returned
// by utils.SaveMediaFile.
func UploadToCloudinary(publicPath string) (string, error) {
	if config.AppConfig.CloudinaryURL == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	rel := strings.TrimPrefix(publicPath, "/uploads/")
	localPath := filepath.Join(config.AppConfig.UploadDir, rel)

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: "media_" + uuid.NewString(),
		Folder:   "media",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", fmt.Errorf("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}

// DeleteFromCloudinary removes a previously uploaded asset, identified
// by the delivery URL stored on the media row.
func DeleteFromCloudinary(assetURL string) error {
	publicID := publicIDFromURL(assetURL)
	if publicID == "" {
		return fmt.Errorf("not a cloudinary delivery URL: %s", assetURL)
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return fmt.Errorf("cloudinary init failed: %w", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("cloudinary delete failed: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}

// publicIDFromURL recovers the public ID from a delivery URL, e.g.
// .../image/upload/v123/media/media_abc.png yields media/media_abc.
func publicIDFromURL(assetURL string) string {
	_, after, found := strings.Cut(assetURL, "/upload/")
	if !found {
		return ""
	}
	parts := strings.Split(after, "/")
	if len(parts) > 1 && isVersionSegment(parts[0]) {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	return strings.TrimSuffix(id, filepath.Ext(id))
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
