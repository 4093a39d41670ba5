package handler

import (
	"slidequiz/internal/dto"
	"slidequiz/internal/service"
	"slidequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question generation requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validator,
	}
}

// GenerateQuestions godoc
// @Summary Generate quiz questions from text
// @Description Sends extracted text to the generation service and returns a question set
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Text and generation options"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /generate-questions/ [post]
func (h *QuestionHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuestionsRequest(req.Text, req.QuestionCount, req.Difficulty); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateQuestions(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
