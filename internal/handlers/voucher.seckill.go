package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

type SeckillOrderService interface {
	PlaceOrder(ctx context.Context, userID string, voucherID int64) (vo.SeckillOrder, error)
	ActivateSale(ctx context.Context, voucherID int64) error
}

type SeckillOrderHandler struct {
	service SeckillOrderService
	logger  *slog.Logger
}

func NewSeckillOrderHandler(service SeckillOrderService, logger *slog.Logger) *SeckillOrderHandler {
	return &SeckillOrderHandler{service: service, logger: logger}
}

func (h *SeckillOrderHandler) Register(router fiber.Router) {
	router.Post("/vouchers/:voucherId/orders", h.PlaceOrder)
	router.Post("/vouchers/:voucherId/activate", h.ActivateSale)
}

func (h *SeckillOrderHandler) PlaceOrder(c fiber.Ctx) error {
	userIDValue := c.Locals("user_id")
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	voucherID, err := voucherIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid voucher id",
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), userID, voucherID)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrVoucherNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "voucher not found"})
		case errors.Is(err, vo.ErrSaleNotStarted):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "sale has not started"})
		case errors.Is(err, vo.ErrSaleEnded):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "sale has ended"})
		case errors.Is(err, vo.ErrOutOfStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "out of stock"})
		case errors.Is(err, vo.ErrAlreadyOrdered):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already ordered"})
		default:
			h.logger.Error("failed to place order", "user_id", userID, "voucher_id", voucherID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *SeckillOrderHandler) ActivateSale(c fiber.Ctx) error {
	voucherID, err := voucherIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid voucher id",
		})
	}

	if err := h.service.ActivateSale(c.Context(), voucherID); err != nil {
		if errors.Is(err, vo.ErrVoucherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "voucher not found"})
		}

		h.logger.Error("failed to activate sale", "voucher_id", voucherID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "activated"})
}

func voucherIDParam(c fiber.Ctx) (int64, error) {
	voucherID, err := strconv.ParseInt(c.Params("voucherId"), 10, 64)
	if err != nil || voucherID <= 0 {
		return 0, errors.New("handlers: invalid voucher id")
	}
	return voucherID, nil
}
