package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
)

type SavedComparisonHandler struct {
	comparisonUsecase usecase.ComparisonSetUsecase
	proxyAuth         fiber.Handler
}

// NewSavedComparisonHandler builds the saved comparison routes. proxyAuth
// guards every route; these are only reachable through the storefront proxy.
func NewSavedComparisonHandler(comparisonUsecase usecase.ComparisonSetUsecase, proxyAuth fiber.Handler) *SavedComparisonHandler {
	return &SavedComparisonHandler{
		comparisonUsecase: comparisonUsecase,
		proxyAuth:         proxyAuth,
	}
}

func (h *SavedComparisonHandler) Register(router fiber.Router) {
	router.Post("/save", h.proxyAuth, h.Save)
	router.Get("/saved", h.proxyAuth, h.List)
	router.Get("/saved/:id", h.proxyAuth, h.Get)
	router.Delete("/saved/:id", h.proxyAuth, h.Delete)

	router.All("/save", methodNotAllowed)
	router.All("/saved/:id", methodNotAllowed)
}

// SavedComparison is a stored comparison as the storefront reads it. Products
// is the stored JSON text, left for the client to parse.
type SavedComparison struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Products     string    `json:"products"`
	CreatedAt    time.Time `json:"createdAt"`
	CustomerID   *string   `json:"customerId"`
	SessionID    *string   `json:"sessionId"`
	ProductCount *int      `json:"productCount,omitempty"`
}

func toSavedComparison(set *entity.ComparisonSet, withCount bool) SavedComparison {
	out := SavedComparison{
		ID:         set.ID,
		Name:       set.Name,
		Products:   string(set.Products),
		CreatedAt:  set.CreatedAt,
		CustomerID: set.CustomerID,
		SessionID:  set.SessionID,
	}
	if withCount {
		n := set.ProductCount()
		out.ProductCount = &n
	}
	return out
}

// Save godoc
// @Summary     Save a named comparison
// @Tags        saved
// @Accept      json
// @Produce     json
// @Param       body body SaveComparisonRequest true "comparison"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /api/save [post]
func (h *SavedComparisonHandler) Save(c *fiber.Ctx) error {
	var req SaveComparisonRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	summary, err := h.comparisonUsecase.Save(c.UserContext(), usecase.SaveComparisonInput{
		Shop:       req.Shop.String(),
		Name:       req.Name,
		Products:   req.Products,
		SessionID:  req.SessionID.String(),
		CustomerID: req.CustomerID.String(),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"comparison": summary,
	})
}

// List godoc
// @Summary     List the visitor's saved comparisons, newest first
// @Tags        saved
// @Produce     json
// @Param       shop       query string true  "shop domain"
// @Param       sessionId  query string false "guest session"
// @Param       customerId query string false "customer id"
// @Success     200 {object} map[string]interface{}
// @Router      /api/saved [get]
func (h *SavedComparisonHandler) List(c *fiber.Ctx) error {
	sets, err := h.comparisonUsecase.ListAll(c.UserContext(), c.Query("shop"), c.Query("sessionId"), c.Query("customerId"))
	if err != nil {
		return err
	}

	comparisons := make([]SavedComparison, 0, len(sets))
	for _, set := range sets {
		comparisons = append(comparisons, toSavedComparison(set, true))
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"comparisons": comparisons,
	})
}

// Get godoc
// @Summary     Fetch one saved comparison owned by the visitor
// @Tags        saved
// @Produce     json
// @Param       id         path  string true  "comparison id"
// @Param       shop       query string true  "shop domain"
// @Param       sessionId  query string false "guest session"
// @Param       customerId query string false "customer id"
// @Success     200 {object} map[string]interface{}
// @Failure     401 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /api/saved/{id} [get]
func (h *SavedComparisonHandler) Get(c *fiber.Ctx) error {
	set, err := h.comparisonUsecase.FetchOne(c.UserContext(), c.Query("shop"), c.Params("id"), c.Query("sessionId"), c.Query("customerId"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"comparison": toSavedComparison(set, false),
	})
}

// Delete godoc
// @Summary     Delete a saved comparison owned by the visitor
// @Tags        saved
// @Accept      json
// @Produce     json
// @Param       id   path string       true "comparison id"
// @Param       body body OwnerRequest true "owner"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /api/saved/{id} [delete]
func (h *SavedComparisonHandler) Delete(c *fiber.Ctx) error {
	var req OwnerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	err := h.comparisonUsecase.DeleteOne(c.UserContext(), req.Shop.String(), c.Params("id"), req.SessionID.String(), req.CustomerID.String())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comparison deleted successfully",
	})
}
