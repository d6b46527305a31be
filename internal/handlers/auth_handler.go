package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/services"
)

type AuthHandler struct {
	verifier  services.TokenVerifier
	referrals *services.ReferralValidator
}

func NewAuthHandler(verifier services.TokenVerifier, referrals *services.ReferralValidator) *AuthHandler {
	return &AuthHandler{
		verifier:  verifier,
		referrals: referrals,
	}
}

// HandleVerifyToken handles POST /verify-token
func (h *AuthHandler) HandleVerifyToken(c *fiber.Ctx) error {
	var req models.VerifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	claims, err := h.verifier.Verify(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"valid":   false,
			"message": "Invalid token",
		})
	}

	return c.JSON(models.VerifyTokenResponse{
		Valid: true,
		UID:   claims.UID,
		Email: claims.Email,
	})
}

// HandleValidateReferral handles POST /validate-referral
func (h *AuthHandler) HandleValidateReferral(c *fiber.Ctx) error {
	var req models.ValidateReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	return c.JSON(models.ValidateReferralResponse{
		Valid: h.referrals.Validate(req.Code),
	})
}
