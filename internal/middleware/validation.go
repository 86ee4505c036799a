package middleware

import (
	"specialty-match/internal/dto"
	"specialty-match/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// LocalSimilarRequest holds the validated dto.SimilarSpecialtiesRequest.
	LocalSimilarRequest = "validated_similar_request"
	// LocalAddRequest holds the validated dto.AddSpecialtyRequest.
	LocalAddRequest = "validated_add_request"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSimilarRequest parses and validates the similarity request body.
func (vm *ValidationMiddleware) ValidateSimilarRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SimilarSpecialtiesRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if errs := vm.validator.ValidateSimilarRequest(req); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalSimilarRequest, req)
		return c.Next()
	}
}

// ValidateAddRequest parses and validates the add-specialty request body.
func (vm *ValidationMiddleware) ValidateAddRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AddSpecialtyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if errs := vm.validator.ValidateAddRequest(req); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalAddRequest, req)
		return c.Next()
	}
}
