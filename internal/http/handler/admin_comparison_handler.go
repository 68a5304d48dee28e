package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"github.com/rahmatrdn/go-product-compare/internal/http/middleware"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
)

type AdminComparisonHandler struct {
	comparisonUsecase usecase.ComparisonSetUsecase
	configUsecase     usecase.ComparisonConfigUsecase
	validator         *helper.Validator
}

func NewAdminComparisonHandler(
	comparisonUsecase usecase.ComparisonSetUsecase,
	configUsecase usecase.ComparisonConfigUsecase,
	validator *helper.Validator,
) *AdminComparisonHandler {
	return &AdminComparisonHandler{
		comparisonUsecase: comparisonUsecase,
		configUsecase:     configUsecase,
		validator:         validator,
	}
}

// Register mounts the merchant routes. The router must already carry the
// admin session middleware.
func (h *AdminComparisonHandler) Register(router fiber.Router) {
	router.Get("/comparisons", h.Get)
	router.Post("/comparisons", h.Post)
	router.All("/comparisons", methodNotAllowed)
}

// Get godoc
// @Summary     All saved comparisons of the shop and its full attribute configuration
// @Tags        admin
// @Produce     json
// @Security    SessionToken
// @Success     200 {object} map[string]interface{}
// @Router      /admin/api/comparisons [get]
func (h *AdminComparisonHandler) Get(c *fiber.Ctx) error {
	shop := middleware.ShopFromContext(c)

	sets, err := h.comparisonUsecase.ListByShop(c.UserContext(), shop)
	if err != nil {
		return err
	}
	attrs, err := h.configUsecase.Get(c.UserContext(), shop)
	if err != nil {
		return err
	}

	comparisons := make([]SavedComparison, 0, len(sets))
	for _, set := range sets {
		comparisons = append(comparisons, toSavedComparison(set, true))
	}

	return c.JSON(fiber.Map{
		"comparisons": comparisons,
		"attributes":  attrs,
	})
}

// Post godoc
// @Summary     Create a comparison or replace the attribute configuration
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    SessionToken
// @Param       body body AdminComparisonRequest true "saveComparison or updateConfig"
// @Success     200 {object} map[string]interface{}
// @Failure     405 {object} map[string]interface{}
// @Router      /admin/api/comparisons [post]
func (h *AdminComparisonHandler) Post(c *fiber.Ctx) error {
	shop := middleware.ShopFromContext(c)

	var req AdminComparisonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	switch req.Type {
	case "saveComparison":
		set, err := h.comparisonUsecase.CreateForShop(c.UserContext(), shop, req.Name, req.Products)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success":    true,
			"comparison": toSavedComparison(set, true),
		})

	case "updateConfig":
		if len(req.Attributes) == 0 {
			return apperr.Validation("Missing required fields: attributes array")
		}
		if err := validateAttributes(h.validator, req.Attributes); err != nil {
			return err
		}
		config, err := h.configUsecase.Update(c.UserContext(), shop, req.Attributes)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success": true,
			"config":  config,
		})
	}

	return apperr.MethodNotAllowed()
}
