package handler

import (
	"specialty-match/internal/domain"
	"specialty-match/internal/dto"
	"specialty-match/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SpecialtyHandler handles specialty-related HTTP requests
type SpecialtyHandler struct {
	specialties domain.SpecialtyService
	matches     domain.MatchService
}

// NewSpecialtyHandler creates a new SpecialtyHandler instance
func NewSpecialtyHandler(specialties domain.SpecialtyService, matches domain.MatchService) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialties: specialties,
		matches:     matches,
	}
}

// RegisterRoutes mounts the specialty endpoints under router.
func (h *SpecialtyHandler) RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware) {
	router.Get("/specialties", h.ListSpecialties)
	router.Post("/specialties", vm.ValidateAddRequest(), h.AddSpecialty)
	router.Post("/specialties/search", h.SearchSpecialties)
	router.Post("/specialties/similar", vm.ValidateSimilarRequest(), h.SimilarSpecialties)
}

// ListSpecialties handles GET /api/specialties
func (h *SpecialtyHandler) ListSpecialties(c *fiber.Ctx) error {
	specialties, err := h.specialties.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toSpecialtyResponses(specialties))
}

// SearchSpecialties handles POST /api/specialties/search
func (h *SpecialtyHandler) SearchSpecialties(c *fiber.Ctx) error {
	var req dto.SearchSpecialtiesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	specialties, err := h.specialties.Search(c.UserContext(), req.Input)
	if err != nil {
		return err
	}
	return c.JSON(toSpecialtyResponses(specialties))
}

// AddSpecialty handles POST /api/specialties
func (h *SpecialtyHandler) AddSpecialty(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalAddRequest).(dto.AddSpecialtyRequest)

	specialty, err := h.specialties.Add(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddSpecialtyResponse{
		Success: true,
		Data:    toSpecialtyResponses([]*domain.Specialty{specialty}),
	})
}

// SimilarSpecialties handles POST /api/specialties/similar
func (h *SpecialtyHandler) SimilarSpecialties(c *fiber.Ctx) error {
	req := c.Locals(middleware.LocalSimilarRequest).(dto.SimilarSpecialtiesRequest)

	matches, err := h.matches.FindSimilar(c.UserContext(), req.InputName, req.NumRows)
	if err != nil {
		return err
	}

	resp := make([]dto.MatchResponse, len(matches))
	for i, m := range matches {
		resp[i] = dto.MatchResponse{Name: m.Name, Similarity: m.Score}
	}
	return c.JSON(resp)
}

func toSpecialtyResponses(specialties []*domain.Specialty) []dto.SpecialtyResponse {
	resp := make([]dto.SpecialtyResponse, len(specialties))
	for i, s := range specialties {
		resp[i] = dto.SpecialtyResponse{ID: s.ID, Name: s.Name}
	}
	return resp
}
