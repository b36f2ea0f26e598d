package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"resellx/internal/config"
	"resellx/internal/domain"
	"resellx/internal/http/handlers"
	applog "resellx/internal/log"
	"resellx/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Store failures end the request with a uniform 500;
			// internals never reach the response body.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)
	requireSeller := handlers.RequireRole(deps.Tokens, deps.Identities, domain.RoleSeller)
	requireUser := handlers.RequireRole(deps.Tokens, deps.Identities, domain.RoleUser)

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString("<h1>Resellx server is running</h1>")
	})

	// Catalog (public)
	app.Get("/categories", deps.CategoryHandler.List)
	app.Get("/category/:id", deps.CategoryHandler.Products)

	// Identities & tokens (token issuance throttled per IP)
	app.Post("/users", deps.IdentityHandler.Register)
	app.Get("/jwt", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.jwt.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.IdentityHandler.IssueToken)
	app.Get("/usertype", deps.IdentityHandler.UserType)

	// Products
	app.Post("/products", requireSeller, deps.ProductHandler.Create)
	app.Get("/myproducts", requireSeller, deps.ProductHandler.Mine)
	app.Delete("/products/:id", deps.ProductHandler.Delete)
	app.Get("/advertisement/:id", deps.ProductHandler.Advertise)
	app.Get("/advertisement", deps.ProductHandler.Advertised)

	// Bookings
	app.Post("/bookings", requireUser, deps.BookingHandler.Create)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
