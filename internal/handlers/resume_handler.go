package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/services"
)

type ResumeHandler struct {
	storageService services.StorageService
	parser         services.ResumeParser
	maxFileSize    int64
}

func NewResumeHandler(
	storageService services.StorageService,
	parser services.ResumeParser,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		storageService: storageService,
		parser:         parser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResume handles POST /upload-resume. The resume is stored,
// its text extracted, and the name/email/phone fields pattern-matched out of
// the text. Empty fields are the caller's cue to collect them before
// starting the interview.
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF and DOCX files are allowed",
		})
	}

	text, err := h.parser.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to extract resume text: %v", err),
		})
	}

	return c.JSON(models.UploadResumeResponse{
		UserInfo:      h.parser.ExtractUserInfo(text),
		ExtractedText: text,
	})
}
