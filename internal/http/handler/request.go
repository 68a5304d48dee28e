package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/entity"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"github.com/rahmatrdn/go-product-compare/internal/helper"
)

// CompareRequest is the body of the storefront compare list actions.
type CompareRequest struct {
	Shop       helper.FlexString `json:"shop" validate:"required"`
	ProductID  helper.FlexString `json:"productId" validate:"required"`
	SessionID  helper.FlexString `json:"sessionId"`
	CustomerID helper.FlexString `json:"customerId"`
}

type SaveComparisonRequest struct {
	Shop       helper.FlexString `json:"shop"`
	Name       string            `json:"name"`
	Products   json.RawMessage   `json:"products" swaggertype:"array,object"`
	SessionID  helper.FlexString `json:"sessionId"`
	CustomerID helper.FlexString `json:"customerId"`
}

type OwnerRequest struct {
	Shop       helper.FlexString `json:"shop"`
	SessionID  helper.FlexString `json:"sessionId"`
	CustomerID helper.FlexString `json:"customerId"`
}

// AdminComparisonRequest is either a saveComparison or an updateConfig action.
type AdminComparisonRequest struct {
	Type       string                       `json:"type"`
	Name       string                       `json:"name"`
	Products   json.RawMessage              `json:"products" swaggertype:"array,object"`
	Attributes []entity.ComparisonAttribute `json:"attributes"`
}

type attributeRules struct {
	Key   string `json:"key" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// parseBody decodes a JSON body. An empty body decodes to the zero value.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return apperr.Validation("Invalid JSON body").WithFields(map[string]string{"body": err.Error()})
	}
	return nil
}

// identityFrom resolves the visitor identity for shop, or a 400 when neither id is present.
func identityFrom(shop, sessionID, customerID string) (entity.Identity, error) {
	identity, err := entity.ResolveIdentity(shop, sessionID, customerID)
	if err != nil {
		return nil, apperr.Validation("Either sessionId or customerId is required")
	}
	return identity, nil
}

func validateAttributes(v *helper.Validator, attrs []entity.ComparisonAttribute) error {
	for _, a := range attrs {
		if fields := v.Struct(attributeRules{Key: a.Key, Label: a.Label}); fields != nil {
			return apperr.Validation("Invalid comparison attribute").WithFields(fields)
		}
	}
	return nil
}
