package mealdb

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/forkcast/backend/internal/domain"
)

// requestTimeout bounds each call to TheMealDB; a timed-out term is simply
// skipped by the aggregation layer.
const requestTimeout = 10 * time.Second

// Client handles communication with TheMealDB API
type Client struct {
	rest  *resty.Client
	debug bool
}

// NewClient creates a new TheMealDB API client
func NewClient(baseURL string) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "Forkcast/1.0")

	return &Client{rest: rest}
}

// SetDebug enables verbose logging of responses
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchMeals looks up meals by a free-text search term. A nil slice means
// the term matched nothing ("meals": null in the payload).
func (c *Client) SearchMeals(ctx context.Context, term string) ([]domain.RawMeal, error) {
	var result domain.MealDBSearchResponse

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("s", term).
		SetResult(&result).
		Get("/search.php")
	if err != nil {
		log.Printf("[MealDB] Request error for term %q: %v", term, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrMealDBAPIFailure, err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Printf("[MealDB] API error for term %q - Status: %d", term, resp.StatusCode())
		return nil, fmt.Errorf("%w: status %d", domain.ErrMealDBAPIFailure, resp.StatusCode())
	}

	if c.debug {
		log.Printf("[MealDB] Term %q returned %d meals", term, len(result.Meals))
	}

	return result.Meals, nil
}
