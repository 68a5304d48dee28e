package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"go.uber.org/zap"
)

// AppProxy verifies the signature Shopify adds to storefront requests it
// proxies to the app. Verification is disabled when secret is empty.
func AppProxy(secret string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		params := map[string][]string{}
		c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
			params[string(k)] = append(params[string(k)], string(v))
		})

		if !ValidProxySignature(params, secret) {
			logger.Warn("rejected app proxy request",
				zap.String("path", c.Path()),
				zap.String("shop", c.Query("shop")),
			)
			return apperr.Unauthorized("Invalid app proxy signature")
		}
		return c.Next()
	}
}

// ValidProxySignature checks params["signature"] against the HMAC-SHA256 of
// the remaining params, sorted by key and rendered as key=v1,v2 with no
// separator between pairs.
func ValidProxySignature(params map[string][]string, secret string) bool {
	sig := params["signature"]
	if len(sig) != 1 || sig[0] == "" {
		return false
	}
	got, err := hex.DecodeString(sig[0])
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(SignProxyParams(params, secret))
	return hmac.Equal(want, got)
}

func proxyMessage(params map[string][]string) string {
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		if k == "signature" {
			continue
		}
		pairs = append(pairs, k+"="+strings.Join(v, ","))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "")
}

// SignProxyParams returns the signature Shopify would attach to params.
func SignProxyParams(params map[string][]string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(proxyMessage(params)))
	return hex.EncodeToString(mac.Sum(nil))
}
