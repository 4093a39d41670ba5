package handler

import (
	"io"
	"slidequiz/internal/domain"
	"slidequiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExtractHandler handles document upload and text extraction requests
type ExtractHandler struct {
	service service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler instance
func NewExtractHandler(service service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{service: service}
}

// UploadSlide godoc
// @Summary Extract text from an uploaded document
// @Description Accepts a PDF, PPTX or DOCX file and returns its plain text
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract"
// @Param format formData string false "Explicit format tag (pdf, pptx, docx); inferred from the filename when omitted"
// @Success 200 {object} dto.UploadTextResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /upload-slide/ [post]
func (h *ExtractHandler) UploadSlide(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}

	f, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.service.ExtractText(c.UserContext(), fileHeader.Filename, c.FormValue("format"), data)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
