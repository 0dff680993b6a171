package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/forkcast/backend/internal/domain"
)

// requestTimeout bounds each call to the USDA API. There is no retry: a
// failed lookup falls through to the estimation table instead.
const requestTimeout = 10 * time.Second

// searchPageSize is the number of candidate foods requested per query; the
// resolver only uses the first.
const searchPageSize = 3

// Client handles communication with the USDA FoodData Central API
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	debug      bool
}

// NewClient creates a new USDA API client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// SetDebug enables verbose logging of API responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchFoods searches for candidate foods in the USDA database
func (c *Client) SearchFoods(ctx context.Context, query string) (*domain.USDASearchResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("pageSize", fmt.Sprintf("%d", searchPageSize))
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Forkcast/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[USDA] Request error for query %q: %v", query, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("[USDA] API error for query %q - Status: %d", query, resp.StatusCode)
		if c.debug {
			log.Printf("[USDA] Response body: %s", string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrUSDAAPIFailure, resp.StatusCode)
	}

	var searchResp domain.USDASearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[USDA] JSON decode error: %v", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Foods) == 0 {
		log.Printf("[USDA] No foods found for query: %q", query)
		return nil, domain.ErrFoodNotFound
	}

	if c.debug {
		log.Printf("[USDA] Found %d foods for query: %q", len(searchResp.Foods), query)
	}

	return &searchResp, nil
}
