package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-product-compare/entity"
	"go.uber.org/zap"
)

// ShopifyClient talks to the Admin GraphQL API of a shop.
type ShopifyClient interface {
	Execute(ctx context.Context, shop, accessToken, query string, variables map[string]interface{}) (*GraphQLResponse, error)
	ProductsByIDs(ctx context.Context, shop, accessToken string, gids []string) ([]entity.Product, error)
}

type ClientConfig struct {
	APIVersion string
	Timeout    time.Duration
	// BaseURL replaces https://<shop> when set.
	BaseURL string
}

type clientImpl struct {
	apiVersion string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg ClientConfig, logger *zap.Logger) ShopifyClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &clientImpl{
		apiVersion: cfg.APIVersion,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// NormalizeShopDomain strips scheme and trailing slashes from a shop domain.
func NormalizeShopDomain(shop string) string {
	shop = strings.TrimSpace(shop)
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	return strings.TrimSuffix(shop, "/")
}

func (c *clientImpl) endpoint(shop string) string {
	base := c.baseURL
	if base == "" {
		base = "https://" + NormalizeShopDomain(shop)
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", base, c.apiVersion)
}

func (c *clientImpl) Execute(ctx context.Context, shop, accessToken, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	jsonData, err := json.Marshal(GraphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, errwrap.Wrap(err, "marshal graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shop), bytes.NewReader(jsonData))
	if err != nil {
		return nil, errwrap.Wrap(err, "create graphql request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errwrap.Wrap(err, "execute graphql request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errwrap.Wrap(err, "read graphql response")
	}

	c.logger.Debug("shopify graphql call",
		zap.String("shop", shop),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var graphQLResp GraphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, errwrap.Wrapf(err, "unmarshal graphql response, body: %s", string(body))
	}

	if len(graphQLResp.Errors) > 0 {
		messages := make([]string, len(graphQLResp.Errors))
		for i, e := range graphQLResp.Errors {
			messages[i] = e.Message
		}
		return nil, fmt.Errorf("GraphQL query failed: %s", strings.Join(messages, "; "))
	}

	return &graphQLResp, nil
}
