package handlers

import (
	"resellx/internal/domain"
	applog "resellx/internal/log"
	"resellx/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Bookings *services.BookingService
}

// Create books a product. A repeat booking of the same product by the
// same email is answered with the soft duplicate payload, not an
// error status.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var b domain.Booking
	if err := c.BodyParser(&b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	res, err := h.Bookings.Create(b)
	if err != nil {
		return err
	}
	if res.AlreadyBooked {
		return c.JSON(fiber.Map{"product": "product already booked"})
	}
	applog.Audit(c, "booking.create", map[string]any{"productId": b.ProductID, "email": b.Email})
	return c.JSON(res.Created)
}
