package handlers

import (
	"errors"

	"resellx/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProductsByCategory(c.Params("id"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(products)
}
