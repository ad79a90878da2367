package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"prodfeedback/internal/models/response_models"
	mem "prodfeedback/pkg/memcache"
	"prodfeedback/pkg/utils"
)

const productsQuery = `query getProducts($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        title
        handle
        status
        images(first: 1) {
          edges {
            node {
              src
            }
          }
        }
      }
    }
  }
}`

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, first int) ([]response_models.Product, error)
}

// ShopifyCatalogClient reads the product catalog over the remote Admin
// GraphQL API. It is read-only; nothing in this system ever writes to
// the catalog.
type ShopifyCatalogClient struct {
	HTTP        *http.Client
	Endpoint    string
	AccessToken string
	Cache       mem.ProductCache
	DefaultTTL  time.Duration
	Logger      *zap.Logger
}

func NewShopifyCatalogClient(cache mem.ProductCache, logger *zap.Logger) *ShopifyCatalogClient {
	shop := os.Getenv("SHOP_DOMAIN")
	token := os.Getenv("SHOPIFY_ADMIN_TOKEN")
	version := os.Getenv("SHOPIFY_API_VERSION")
	if version == "" {
		version = "2024-10"
	}

	return &ShopifyCatalogClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		Endpoint:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, version),
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  5 * time.Minute,
		Logger:      logger,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type productsPayload struct {
	Data struct {
		Products struct {
			Edges []struct {
				Node struct {
					ID     string `json:"id"`
					Title  string `json:"title"`
					Handle string `json:"handle"`
					Status string `json:"status"`
					Images struct {
						Edges []struct {
							Node struct {
								Src string `json:"src"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"images"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *ShopifyCatalogClient) ListProducts(ctx context.Context, first int) ([]response_models.Product, error) {
	if c.Cache != nil {
		if cached, ok := c.Cache.Get(first); ok {
			return cached, nil
		}
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     productsQuery,
		Variables: map[string]interface{}{"first": first},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding query: %v", utils.ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.AccessToken)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGateway, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status %s", utils.ErrGateway, resp.Status)
	}

	var payload productsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", utils.ErrGateway, err)
	}
	if len(payload.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", utils.ErrGateway, payload.Errors[0].Message)
	}

	products := make([]response_models.Product, 0, len(payload.Data.Products.Edges))
	for _, edge := range payload.Data.Products.Edges {
		localID, err := utils.ExtractLocalID(edge.Node.ID)
		if err != nil {
			// A single malformed id should not take down the picker.
			c.Logger.Warn("skipping product with malformed id",
				zap.String("id", edge.Node.ID), zap.Error(err))
			continue
		}

		imageURL := ""
		if len(edge.Node.Images.Edges) > 0 {
			imageURL = edge.Node.Images.Edges[0].Node.Src
		}

		products = append(products, response_models.Product{
			ID:       localID,
			Title:    edge.Node.Title,
			Handle:   edge.Node.Handle,
			Status:   edge.Node.Status,
			ImageURL: imageURL,
		})
	}

	if c.Cache != nil {
		c.Cache.Set(first, products, c.DefaultTTL)
	}

	return products, nil
}
