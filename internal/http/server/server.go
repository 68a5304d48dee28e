// Package server assembles the fiber application: middleware, routes and error mapping.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/config"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"github.com/rahmatrdn/go-product-compare/internal/http/handler"
	"github.com/rahmatrdn/go-product-compare/internal/http/middleware"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
	"go.uber.org/zap"
)

type Usecases struct {
	CompareList      usecase.CompareListUsecase
	ComparisonSet    usecase.ComparisonSetUsecase
	ComparisonConfig usecase.ComparisonConfigUsecase
}

// New returns the fully routed app.
func New(cfg config.ShopifyConfig, uc Usecases, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "product-compare",
		ErrorHandler: ErrorHandler(logger),
	})

	metrics := middleware.NewMetrics()

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(metrics.Handler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Expose())
	app.Get("/swagger/*", swagger.HandlerDefault)

	validator := helper.NewValidator()

	api := app.Group("/api")
	handler.NewCompareHandler(uc.CompareList, validator).Register(api)
	handler.NewSavedComparisonHandler(uc.ComparisonSet, middleware.AppProxy(cfg.APISecret, logger)).Register(api)
	handler.NewComparisonConfigHandler(uc.ComparisonConfig).Register(api)

	admin := app.Group("/admin/api", middleware.AdminSession(cfg.APIKey, cfg.APISecret, logger))
	handler.NewAdminComparisonHandler(uc.ComparisonSet, uc.ComparisonConfig, validator).Register(admin)

	return app
}

// ErrorHandler renders handler errors as {"success": false, "error": ...}.
// Typed errors keep their status. Anything else is a 500 and is logged.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if ae, ok := apperr.As(err); ok {
			if ae.Status >= fiber.StatusInternalServerError {
				logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(ae.Status).JSON(errorBody(ae))
		}

		if fe, ok := err.(*fiber.Error); ok {
			return c.Status(fe.Code).JSON(fiber.Map{"success": false, "error": fe.Message})
		}

		logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}

func errorBody(ae *apperr.Error) fiber.Map {
	body := fiber.Map{"success": false, "error": ae.Message}
	if ae.Details != "" {
		body["details"] = ae.Details
	}
	if len(ae.Fields) > 0 {
		body["fields"] = ae.Fields
	}
	for k, v := range ae.Extra {
		body[k] = v
	}
	return body
}
