package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mondalsurojit/swipe-assignment/internal/services"
)

type CandidateHandler struct {
	directory *services.CandidateDirectory
}

func NewCandidateHandler(directory *services.CandidateDirectory) *CandidateHandler {
	return &CandidateHandler{directory: directory}
}

// HandleListCandidates handles GET /candidates
func (h *CandidateHandler) HandleListCandidates(c *fiber.Ctx) error {
	candidates, err := h.directory.List(
		c.Query("search"),
		c.Query("sortBy", "finalScore"),
		c.Query("order", "desc"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list candidates",
		})
	}

	return c.JSON(candidates)
}

// HandleGetCandidate handles GET /candidate/:sessionId
func (h *CandidateHandler) HandleGetCandidate(c *fiber.Ctx) error {
	candidate, err := h.directory.Get(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	return c.JSON(candidate)
}

// HandleSemanticSearch handles GET /candidates/semantic-search
func (h *CandidateHandler) HandleSemanticSearch(c *fiber.Ctx) error {
	if !h.directory.SemanticEnabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Semantic search is not enabled",
		})
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	candidates, err := h.directory.SemanticSearch(c.Context(), query, c.QueryInt("limit", 10))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Semantic search failed",
		})
	}

	return c.JSON(candidates)
}
