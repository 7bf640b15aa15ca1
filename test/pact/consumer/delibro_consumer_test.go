//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/delibro/delibro/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type shopPayload struct {
	ID                string  `json:"id,omitempty"`
	Name              string  `json:"name"`
	SellerType        string  `json:"sellerType,omitempty"`
	Craftsmanship     string  `json:"craftsmanship,omitempty"`
	Profile           string  `json:"profile,omitempty"`
	PickupAddress     string  `json:"pickupAddress,omitempty"`
	ContactEmail      string  `json:"contactEmail,omitempty"`
	MinimumOrderValue float64 `json:"minimumOrderValue,omitempty"`
}

type estimatePayload struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Size        string `json:"size,omitempty"`
}

type quotePayload struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DistanceKm  int    `json:"distanceKm"`
	Size        string `json:"size"`
	Price       int    `json:"price"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestSellerPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	requestShop := shopPayload{
		Name:              "Nila's Kitchen",
		SellerType:        "individual",
		Craftsmanship:     "handmade",
		Profile:           "Small-batch pickles and preserves.",
		PickupAddress:     "House 7, Road 2, Dhanmondi, Dhaka",
		ContactEmail:      "nila@example.pact",
		MinimumOrderValue: 50,
	}
	shopBodyMatcher := matchers.Map{
		"id":                matchers.Like(pacttest.ExistingShopID),
		"name":              matchers.Like(requestShop.Name),
		"sellerType":        matchers.Term("individual", "individual"),
		"craftsmanship":     matchers.Term("handmade", "handmade|homemade"),
		"minimumOrderValue": matchers.Like(requestShop.MinimumOrderValue),
		"createdAt":         matchers.Like("2024-06-12T10:00:00Z"),
	}
	quoteBodyMatcher := matchers.Map{
		"origin":      matchers.S("dhaka"),
		"destination": matchers.S("chattogram"),
		"distanceKm":  matchers.Like(298),
		"size":        matchers.Term("medium", "small|medium|large|xl"),
		"price":       matchers.Like(249),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateMarketplaceBaseline).
		UponReceiving("a request to open a shop").
		WithRequest("POST", "/v1/shops", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"name":              matchers.Like(requestShop.Name),
				"sellerType":        matchers.Term("individual", "individual"),
				"craftsmanship":     matchers.Term("handmade", "handmade|homemade"),
				"minimumOrderValue": matchers.Like(requestShop.MinimumOrderValue),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(shopBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateShopExists).
		UponReceiving("a request to list shops").
		WithRequest("GET", "/v1/shops").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(shopBodyMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateRoutesAvailable).
		UponReceiving("a request to price a curated route").
		WithRequest("POST", "/v1/pricing/estimate", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"origin":      matchers.S("dhaka"),
				"destination": matchers.S("chattogram"),
				"size":        matchers.Term("medium", "small|medium|large|xl"),
			})
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(quoteBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateRoutesAvailable).
		UponReceiving("a request to price a degenerate route").
		WithRequest("POST", "/v1/pricing/estimate", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"origin":      matchers.S("dhaka"),
				"destination": matchers.S("dhaka"),
			})
		}).
		WillRespondWith(http.StatusUnprocessableEntity, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/route-not-found"),
				"title":  matchers.Like("Route Not Found"),
				"status": matchers.Like(http.StatusUnprocessableEntity),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newSellerClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := client.CreateShop(ctx, requestShop)
		if err != nil {
			return fmt.Errorf("create shop: %w", err)
		}
		if created == nil || created.ID == "" {
			return fmt.Errorf("expected created shop ID to be set")
		}

		shops, err := client.ListShops(ctx)
		if err != nil {
			return fmt.Errorf("list shops: %w", err)
		}
		if len(shops) == 0 {
			return fmt.Errorf("expected at least one shop")
		}

		quote, err := client.Estimate(ctx, estimatePayload{Origin: "dhaka", Destination: "chattogram", Size: "medium"})
		if err != nil {
			return fmt.Errorf("estimate: %w", err)
		}
		if quote == nil || quote.Price == 0 {
			return fmt.Errorf("expected a priced quote, got %+v", quote)
		}

		if _, err := client.Estimate(ctx, estimatePayload{Origin: "dhaka", Destination: "dhaka"}); err == nil {
			return fmt.Errorf("expected 422 for a degenerate route")
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusUnprocessableEntity {
			return fmt.Errorf("expected 422, got %d", apiErr.Status())
		}

		return nil
	})
	require.NoError(t, err)
}

type sellerClient struct {
	baseURL    string
	httpClient *http.Client
}

func newSellerClient(config pactconsumer.MockServerConfig) *sellerClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &sellerClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *sellerClient) CreateShop(ctx context.Context, shop shopPayload) (*shopPayload, error) {
	body, err := json.Marshal(shop)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/shops", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload shopPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *sellerClient) ListShops(ctx context.Context) ([]shopPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/shops", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload []shopPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *sellerClient) Estimate(ctx context.Context, estimate estimatePayload) (*quotePayload, error) {
	body, err := json.Marshal(estimate)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pricing/estimate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload quotePayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
