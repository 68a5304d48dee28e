package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
)

type CompareHandler struct {
	compareUsecase usecase.CompareListUsecase
	validator      *helper.Validator
}

func NewCompareHandler(compareUsecase usecase.CompareListUsecase, validator *helper.Validator) *CompareHandler {
	return &CompareHandler{
		compareUsecase: compareUsecase,
		validator:      validator,
	}
}

func (h *CompareHandler) Register(router fiber.Router) {
	router.Post("/add", h.Add)
	router.Post("/check", h.Check)
	router.Post("/remove", h.Remove)
	router.Get("/list", h.List)

	router.All("/check", methodNotAllowed)
	router.All("/remove", methodNotAllowed)
}

func methodNotAllowed(c *fiber.Ctx) error {
	return apperr.MethodNotAllowed()
}

// bind decodes and validates a compare request and resolves its identity.
// missingMsg is the error reported when shop or productId is absent.
func (h *CompareHandler) bind(c *fiber.Ctx, missingMsg string) (*CompareRequest, entity.Identity, error) {
	var req CompareRequest
	if err := parseBody(c, &req); err != nil {
		return nil, nil, err
	}
	if fields := h.validator.Struct(req); fields != nil {
		return nil, nil, apperr.Validation(missingMsg).WithFields(fields)
	}

	identity, err := identityFrom(req.Shop.String(), req.SessionID.String(), req.CustomerID.String())
	if err != nil {
		return nil, nil, err
	}
	return &req, identity, nil
}

// Add godoc
// @Summary     Add a product to the visitor's compare list
// @Tags        compare
// @Accept      json
// @Produce     json
// @Param       body body CompareRequest true "product and visitor"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /api/add [post]
func (h *CompareHandler) Add(c *fiber.Ctx) error {
	req, identity, err := h.bind(c, "Missing required fields (shop and productId are required)")
	if err != nil {
		return err
	}

	res, err := h.compareUsecase.Add(c.UserContext(), identity, req.ProductID.String())
	if err != nil {
		return err
	}

	if res.AlreadyAdded {
		return c.JSON(fiber.Map{
			"success":      false,
			"alreadyAdded": true,
			"message":      "Product is already in compare list",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Product added to compare list",
		"productCount": res.ProductCount,
		"userType":     res.UserType,
	})
}

// Check godoc
// @Summary     Report whether a product is in the visitor's compare list
// @Tags        compare
// @Accept      json
// @Produce     json
// @Param       body body CompareRequest true "product and visitor"
// @Success     200 {object} map[string]interface{}
// @Router      /api/check [post]
func (h *CompareHandler) Check(c *fiber.Ctx) error {
	req, identity, err := h.bind(c, "Missing required parameters (shop and productId)")
	if err != nil {
		return err
	}

	res, err := h.compareUsecase.Check(c.UserContext(), identity, req.ProductID.String())
	if err != nil {
		return err
	}

	body := fiber.Map{
		"inCompare":     res.InCompare,
		"userType":      res.UserType,
		"totalProducts": res.TotalProducts,
	}
	if res.ListInfo != nil {
		body["listInfo"] = res.ListInfo
	}
	return c.JSON(body)
}

// Remove godoc
// @Summary     Remove a product from the visitor's compare list
// @Tags        compare
// @Accept      json
// @Produce     json
// @Param       body body CompareRequest true "product and visitor"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /api/remove [post]
func (h *CompareHandler) Remove(c *fiber.Ctx) error {
	req, identity, err := h.bind(c, "Missing required parameters (shop and productId)")
	if err != nil {
		return err
	}

	res, err := h.compareUsecase.Remove(c.UserContext(), identity, req.ProductID.String())
	if err != nil {
		return err
	}

	message := "Product removed successfully"
	if res.ListDeleted {
		message = "Product removed and list deleted (was empty)"
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        message,
		"remainingCount": res.RemainingCount,
		"products":       res.Products,
		"userType":       res.UserType,
		"listDeleted":    res.ListDeleted,
	})
}

// List godoc
// @Summary     Hydrated products of the visitor's compare list
// @Tags        compare
// @Produce     json
// @Param       shop       query string true  "shop domain"
// @Param       sessionId  query string false "guest session"
// @Param       customerId query string false "customer id"
// @Success     200 {object} map[string]interface{}
// @Router      /api/list [get]
func (h *CompareHandler) List(c *fiber.Ctx) error {
	shop := c.Query("shop")
	if shop == "" {
		return apperr.Validation("Missing shop parameter")
	}

	identity, err := identityFrom(shop, c.Query("sessionId"), c.Query("customerId"))
	if err != nil {
		return err
	}

	res, err := h.compareUsecase.Fetch(c.UserContext(), identity)
	if err != nil {
		return apperr.Wrap(err, "Failed to load products")
	}

	body := fiber.Map{
		"products": res.Products,
		"userType": res.UserType,
	}
	if res.ListInfo != nil {
		body["listInfo"] = res.ListInfo
	}
	return c.JSON(body)
}
