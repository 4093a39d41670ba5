package handler

import (
	"slidequiz/internal/dto"
	"slidequiz/internal/service"
	"slidequiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GradingHandler handles answer submission and result requests
type GradingHandler struct {
	service   service.GradingService
	validator *validation.Validator
}

// NewGradingHandler creates a new GradingHandler instance
func NewGradingHandler(service service.GradingService, validator *validation.Validator) *GradingHandler {
	return &GradingHandler{
		service:   service,
		validator: validator,
	}
}

// SubmitAnswers godoc
// @Summary Submit answers for a question set
// @Description Stores a student's answers against a previously generated question set
// @Tags grading
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswersRequest true "Set id and answers keyed by question prompt"
// @Success 200 {object} dto.SubmitAnswersResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /submit-answers/ [post]
func (h *GradingHandler) SubmitAnswers(c *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if errs := h.validator.ValidateSubmitAnswersRequest(req.SetID, req.Answers); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswers(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResults godoc
// @Summary Get graded results for a question set
// @Description Grades the stored submission against the question set and returns score, feedback and study suggestions
// @Tags grading
// @Produce json
// @Param set_id path string true "Question set id"
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /results/{set_id} [get]
func (h *GradingHandler) GetResults(c *fiber.Ctx) error {
	setID := c.Params("set_id")
	if errs := h.validator.ValidateSetID(setID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GetResults(c.UserContext(), setID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
