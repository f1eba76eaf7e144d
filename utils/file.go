package utils

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"sticker-shop/config"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Accepted upload MIME types for media assets. Images plus the short
// product videos the storefront embeds.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/mov":  true,
	"video/webm": true,
	"video/ogg":  true,
}

// MediaContentType returns the normalized MIME type of the upload, or an
// error when the type is not on the whitelist.
func MediaContentType(fileHeader *multipart.FileHeader) (string, error) {
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedMediaTypes[contentType] {
		return "", errors.New("unsupported media type")
	}
	return contentType, nil
}

// SaveMediaFile stores the upload under the configured upload dir with a
// random filename and returns the public path.
func SaveMediaFile(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	if _, err := MediaContentType(fileHeader); err != nil {
		return "", err
	}

	uploadPath := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join("uploads", subDir, filename)), nil
}

// DeleteMediaFile removes a previously stored upload. Missing files are
// not an error.
func DeleteMediaFile(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	fullPath := filepath.Join(config.AppConfig.UploadDir, rel)
	if _, err := os.Stat(fullPath); err == nil {
		return os.Remove(fullPath)
	}
	return nil
}
