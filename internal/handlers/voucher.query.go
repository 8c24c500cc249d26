package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

type VoucherQueryService interface {
	GetVoucher(ctx context.Context, voucherID int64) (vo.VoucherDetails, error)
}

type VoucherQueryHandler struct {
	service VoucherQueryService
	logger  *slog.Logger
}

func NewVoucherQueryHandler(service VoucherQueryService, logger *slog.Logger) *VoucherQueryHandler {
	return &VoucherQueryHandler{service: service, logger: logger}
}

func (h *VoucherQueryHandler) Register(router fiber.Router) {
	router.Get("/vouchers/:voucherId", h.Handle)
}

func (h *VoucherQueryHandler) Handle(c fiber.Ctx) error {
	voucherID, err := voucherIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid voucher id",
		})
	}

	voucher, err := h.service.GetVoucher(c.Context(), voucherID)
	if err != nil {
		if errors.Is(err, vo.ErrVoucherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "voucher not found"})
		}

		h.logger.Error("failed to get voucher", "voucher_id", voucherID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(voucher)
}
