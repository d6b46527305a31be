package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/services"
)

type InterviewHandler struct {
	engine *services.InterviewEngine
}

func NewInterviewHandler(engine *services.InterviewEngine) *InterviewHandler {
	return &InterviewHandler{engine: engine}
}

// HandleStartInterview handles POST /start-interview
func (h *InterviewHandler) HandleStartInterview(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.engine.StartSession(c.Context(), req.CandidateID, req.UserInfo)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start interview",
		})
	}

	return c.JSON(resp)
}

// HandleSubmitAnswer handles POST /submit-answer
func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.SessionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId is required",
		})
	}

	resp, err := h.engine.SubmitAnswer(c.Context(), req.SessionID, req.Answer)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(resp)
}

// HandleTerminateInterview handles POST /terminate-interview
func (h *InterviewHandler) HandleTerminateInterview(c *fiber.Ctx) error {
	var req models.TerminateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.SessionID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId is required",
		})
	}

	resp, err := h.engine.TerminateInterview(c.Context(), req.SessionID)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(resp)
}

// HandleUpdateUserInfo handles POST /update-user-info
func (h *InterviewHandler) HandleUpdateUserInfo(c *fiber.Ctx) error {
	var req models.UpdateUserInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.engine.UpdateUserInfo(c.Context(), req.SessionID, req.UserInfo)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(resp)
}

// HandleGetSession handles GET /session/:sessionId
func (h *InterviewHandler) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.engine.GetSession(c.Params("sessionId"))
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(session)
}

func engineError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	case errors.Is(err, models.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	case errors.Is(err, models.ErrInterviewCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Interview already completed",
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
