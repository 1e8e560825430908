package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vojtechokenka/nokturo/internal/i18n"
	"github.com/vojtechokenka/nokturo/internal/storage"
	"github.com/vojtechokenka/nokturo/internal/utils"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 20 << 20

// UploadHandler handles image upload routes
type UploadHandler struct {
	Uploader storage.Uploader
}

// Upload handles POST /api/uploads
// @Summary Upload an image
// @Description Store an image file and return its public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Missing file", fiber.StatusBadRequest, "upload.input")
	}

	if fileHeader.Size > maxUploadBytes {
		return utils.ErrorResponse(c, i18n.T(lang(c), "upload.too_large"), fiber.StatusRequestEntityTooLarge, "upload.size")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "upload.open")
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.Uploader.Upload(c.Context(), fileHeader.Filename, contentType, f)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "upload.store")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":  true,
		"url": url,
	})
}
