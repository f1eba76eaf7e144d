package controllers

import (
	"errors"
	"log"
	"net/http"
	"sticker-shop/config"
	"sticker-shop/libs"
	"sticker-shop/models"
	"sticker-shop/repositories"
	"sticker-shop/utils"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	store *repositories.MediaRepository
}

func NewMediaController(store *repositories.MediaRepository) *MediaController {
	return &MediaController{store: store}
}

// @Summary Upload media
// @Description Upload an image or video asset (Admin). Stored locally, or in Cloudinary when configured.
// @Tags Admin - Media
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param alt formData string true "Alt text"
// @Param file formData file true "Asset"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/media [post]
func (ctrl *MediaController) UploadMedia(c *gin.Context) {
	alt := strings.TrimSpace(c.PostForm("alt"))
	if alt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Alt text is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "File is required"})
		return
	}

	mimeType, err := utils.MediaContentType(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	url, err := utils.SaveMediaFile(c, fileHeader, "media")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	if config.AppConfig.CloudinaryURL != "" {
		if remoteURL, err := libs.UploadToCloudinary(url); err == nil {
			url = remoteURL
		}
	}

	media := models.Media{Alt: alt, URL: url, MimeType: mimeType}
	if err := ctrl.store.Create(c.Request.Context(), &media); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to save media"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Media uploaded successfully", Data: media})
}

// @Summary Get media by ID
// @Description Get a media document
// @Tags Media
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} models.Media
// @Failure 404 {object} models.MessageResponse
// @Router /media/{id} [get]
func (ctrl *MediaController) GetMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid media ID"})
		return
	}

	media, err := ctrl.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "Media not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to get media"})
		return
	}

	c.JSON(http.StatusOK, media)
}

// @Summary Delete media
// @Description Delete a media document and its stored asset (Admin)
// @Tags Admin - Media
// @Security BearerAuth
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/media/{id} [delete]
func (ctrl *MediaController) DeleteMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid media ID"})
		return
	}

	media, err := ctrl.store.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Media not found"})
		return
	}

	if err := ctrl.store.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete media"})
		return
	}

	if strings.HasPrefix(media.URL, "/uploads/") {
		utils.DeleteMediaFile(media.URL)
	} else if config.AppConfig.CloudinaryURL != "" {
		if err := libs.DeleteFromCloudinary(media.URL); err != nil {
			log.Printf("cloudinary cleanup failed for media %d: %v", media.ID, err)
		}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Media deleted"})
}
