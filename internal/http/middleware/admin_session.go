package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"go.uber.org/zap"
)

// ShopKey is the fiber Locals key holding the authenticated admin shop domain.
const ShopKey = "shop"

type SessionClaims struct {
	Dest string `json:"dest"`
	jwt.RegisteredClaims
}

// AdminSession authenticates embedded admin requests by their App Bridge
// session token. Without a secret the shop is taken from the shop query
// parameter instead.
func AdminSession(apiKey, secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			shop := c.Query("shop")
			if shop == "" {
				return apperr.Unauthorized("Shop parameter is required")
			}
			c.Locals(ShopKey, shop)
			return c.Next()
		}

		raw := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
		if raw == "" {
			return apperr.Unauthorized("Missing session token")
		}

		shop, err := ParseSessionToken(raw, apiKey, secret)
		if err != nil {
			logger.Warn("rejected admin session token", zap.Error(err))
			return apperr.Unauthorized("Invalid session token")
		}

		c.Locals(ShopKey, shop)
		return c.Next()
	}
}

// ParseSessionToken validates an HS256 session token and returns the shop
// domain from its dest claim.
func ParseSessionToken(raw, apiKey, secret string) (string, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if apiKey != "" && !claims.VerifyAudience(apiKey, true) {
		return "", jwt.NewValidationError("token audience mismatch", jwt.ValidationErrorAudience)
	}

	dest, err := url.Parse(claims.Dest)
	if err != nil || dest.Host == "" {
		return "", jwt.NewValidationError("token has no shop destination", jwt.ValidationErrorClaimsInvalid)
	}
	return dest.Host, nil
}

// ShopFromContext returns the shop AdminSession stored for this request.
func ShopFromContext(c *fiber.Ctx) string {
	shop, _ := c.Locals(ShopKey).(string)
	return shop
}
