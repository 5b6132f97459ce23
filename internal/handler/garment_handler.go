package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/daveonthegit/OutfAI/internal/models"
	"github.com/daveonthegit/OutfAI/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type GarmentHandler struct {
	svc *service.GarmentService
}

func NewGarmentHandler(svc *service.GarmentService) *GarmentHandler {
	return &GarmentHandler{svc: svc}
}

// ListGarments godoc
// GET /api/v1/users/:id/garments
func (h *GarmentHandler) ListGarments(c fiber.Ctx) error {
	ownerID, err := strconv.Atoi(c.Params("id"))
	if err != nil || ownerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid user ID"})
	}

	garments, err := h.svc.List(c.Context(), ownerID)
	if err != nil {
		slog.Error("failed to list garments", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to list garments"})
	}

	if garments == nil {
		garments = []models.Garment{}
	}

	return c.JSON(fiber.Map{
		"owner_id": ownerID,
		"garments": garments,
	})
}

// CreateGarment godoc
// POST /api/v1/users/:id/garments
func (h *GarmentHandler) CreateGarment(c fiber.Ctx) error {
	ownerID, err := strconv.Atoi(c.Params("id"))
	if err != nil || ownerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid user ID"})
	}

	var req models.CreateGarmentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	garment, err := h.svc.Create(c.Context(), ownerID, req)
	if err != nil {
		slog.Error("failed to create garment", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(garment)
}

// DeleteGarment godoc
// DELETE /api/v1/garments/:id
func (h *GarmentHandler) DeleteGarment(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid garment ID"})
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrGarmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "garment not found"})
		}
		slog.Error("failed to delete garment", "garment_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to delete garment"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
