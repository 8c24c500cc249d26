package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

type ShopService interface {
	GetShop(ctx context.Context, shopID int64) (vo.ShopDetails, error)
	UpdateShop(ctx context.Context, shop domain.Shop) error
	WarmShop(ctx context.Context, shopID int64) error
}

type ShopHandler struct {
	service ShopService
	logger  *slog.Logger
}

type shopUpdateRequest struct {
	Name    string  `json:"name"`
	TypeID  int64   `json:"type_id"`
	Address string  `json:"address"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

func NewShopHandler(service ShopService, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{service: service, logger: logger}
}

func (h *ShopHandler) Register(router fiber.Router) {
	router.Get("/shops/:id", h.GetShop)
	router.Put("/shops/:id", h.UpdateShop)
	router.Post("/shops/:id/warmup", h.WarmShop)
}

func (h *ShopHandler) GetShop(c fiber.Ctx) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shop id"})
	}

	shop, err := h.service.GetShop(c.Context(), shopID)
	if err != nil {
		if errors.Is(err, vo.ErrShopNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shop not found"})
		}

		h.logger.Error("failed to get shop", "shop_id", shopID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(shop)
}

func (h *ShopHandler) UpdateShop(c fiber.Ctx) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shop id"})
	}

	var requestBody shopUpdateRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	shop := domain.Shop{
		ID:      shopID,
		Name:    requestBody.Name,
		TypeID:  requestBody.TypeID,
		Address: requestBody.Address,
		X:       requestBody.X,
		Y:       requestBody.Y,
	}

	if err := h.service.UpdateShop(c.Context(), shop); err != nil {
		if errors.Is(err, vo.ErrShopNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shop not found"})
		}

		h.logger.Error("failed to update shop", "shop_id", shopID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "updated"})
}

func (h *ShopHandler) WarmShop(c fiber.Ctx) error {
	shopID, err := shopIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shop id"})
	}

	if err := h.service.WarmShop(c.Context(), shopID); err != nil {
		if errors.Is(err, vo.ErrShopNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shop not found"})
		}

		h.logger.Error("failed to warm shop cache", "shop_id", shopID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "warmed"})
}

func shopIDParam(c fiber.Ctx) (int64, error) {
	shopID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || shopID <= 0 {
		return 0, errors.New("handlers: invalid shop id")
	}
	return shopID, nil
}
