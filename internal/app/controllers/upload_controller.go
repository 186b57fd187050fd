package controllers

import (
	"errors"
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/findjobsyria/api/internal/pkg/filestorage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UploadController stores profile and company images
type UploadController struct {
	storage filestorage.ImageStorage
	logger  zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.ImageStorage, logger zerolog.Logger) *UploadController {
	return &UploadController{storage: storage, logger: logger}
}

// UploadImage stores an image and returns its public URL
// @Summary Upload image
// @Description Stores a JPEG, PNG, GIF or WebP image of at most 5 MB. The returned URL can be set as avatar, logo or coverImage.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security SessionCookie
// @Param file formData file true "Image"
// @Param kind formData string true "avatar, logo or cover"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Stored image"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	kind := filestorage.ImageKind(ctx.PostForm("kind"))
	fileHeader, _ := ctx.FormFile("file")

	url, err := c.storage.SaveImage(fileHeader, kind)
	if err != nil {
		field := "file"
		switch {
		case errors.Is(err, filestorage.ErrInvalidKind):
			field = "kind"
		case errors.Is(err, filestorage.ErrNoFile), errors.Is(err, filestorage.ErrFileTooLarge), errors.Is(err, filestorage.ErrUnsupportedType):
		default:
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField(field)))
		return
	}

	c.logger.Info().Str("userID", identity.ID).Str("kind", string(kind)).Msg("Image uploaded")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.UploadResponse{URL: url, Kind: string(kind)}))
}
