package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
)

type ComparisonConfigHandler struct {
	configUsecase usecase.ComparisonConfigUsecase
}

func NewComparisonConfigHandler(configUsecase usecase.ComparisonConfigUsecase) *ComparisonConfigHandler {
	return &ComparisonConfigHandler{configUsecase: configUsecase}
}

func (h *ComparisonConfigHandler) Register(router fiber.Router) {
	router.Get("/comparison-config", h.Get)
}

// Get godoc
// @Summary     Enabled comparison attributes for a shop, in display order
// @Tags        config
// @Produce     json
// @Param       shop query string true "shop domain"
// @Success     200 {object} map[string]interface{}
// @Router      /api/comparison-config [get]
func (h *ComparisonConfigHandler) Get(c *fiber.Ctx) error {
	attrs, err := h.configUsecase.GetEnabled(c.UserContext(), c.Query("shop"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"attributes": attrs,
	})
}
