package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/daveonthegit/OutfAI/internal/models"
	"github.com/daveonthegit/OutfAI/internal/service"
)

type RecommendationHandler struct {
	svc *service.RecommendationService
}

func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// Health godoc
// GET /health
func (h *RecommendationHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "outfai",
	})
}

// Recommend godoc
// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var rc models.RecommendationContext
	if err := c.Bind().JSON(&rc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	result, err := h.svc.Recommend(c.Context(), rc)
	if err != nil {
		slog.Error("failed to generate recommendations", "owner_id", rc.OwnerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to generate recommendations"})
	}

	return c.JSON(result)
}

// GetOutfits godoc
// GET /api/v1/users/:id/outfits
func (h *RecommendationHandler) GetOutfits(c fiber.Ctx) error {
	ownerID, err := strconv.Atoi(c.Params("id"))
	if err != nil || ownerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid user ID"})
	}

	limit := fiber.Query(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	snapshots, err := h.svc.GetOutfits(c.Context(), ownerID, limit)
	if err != nil {
		slog.Error("failed to fetch outfits", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to fetch outfits"})
	}

	if snapshots == nil {
		snapshots = []models.OutfitSnapshot{}
	}

	return c.JSON(fiber.Map{
		"owner_id": ownerID,
		"outfits":  snapshots,
	})
}
