package delibroserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	marketmemory "github.com/delibro/delibro/internal/domains/marketplace/adapters/memory"
	marketapp "github.com/delibro/delibro/internal/domains/marketplace/application"
	pricingapp "github.com/delibro/delibro/internal/domains/pricing/application"
	pricingdomain "github.com/delibro/delibro/internal/domains/pricing/domain"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	marketService := marketapp.NewService(marketmemory.NewLedger())
	pricingService := pricingapp.NewService(
		pricingapp.WithMatrix(pricingdomain.NewMatrix(pricingdomain.WithFillerSeed(1))),
	)
	handlers := ApiHandleFunctions{
		ShopAPI:       NewShopAPI(marketService),
		ProductAPI:    NewProductAPI(marketService),
		OrderAPI:      NewOrderAPI(marketService),
		SettlementAPI: NewSettlementAPI(marketService),
		ModerationAPI: NewModerationAPI(marketService),
		PricingAPI:    NewPricingAPI(pricingService),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAPI_ShopAndProductLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/shops", gin.H{
		"name":              "Nila's Kitchen",
		"pickupAddress":     "House 7, Road 2, Dhanmondi, Dhaka",
		"contactEmail":      "nila@example.com",
		"minimumOrderValue": 20,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	shop := decode(t, rec)
	require.Equal(t, "individual", shop["sellerType"])
	require.Equal(t, "handmade", shop["craftsmanship"])
	shopID := shop["id"].(string)
	require.NotEmpty(t, shopID)

	rec = doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
		"shopId":      shopID,
		"name":        "Mango Pickle",
		"price":       30,
		"inventory":   4,
		"homemadeTag": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	product := decode(t, rec)
	require.Equal(t, shopID, product["shopId"])
	require.Equal(t, float64(4), product["inventory"])

	rec = doJSON(t, router, http.MethodGet, "/v1/products?shopId="+shopID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
}

func TestAPI_ProductPolicyViolationIsProblemJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/shops", gin.H{"name": "Shop"})
	require.Equal(t, http.StatusCreated, rec.Code)
	shopID := decode(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
		"shopId":      shopID,
		"name":        "Factory Jam",
		"price":       5,
		"inventory":   3,
		"homemadeTag": false,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	problem := decode(t, rec)
	require.Equal(t, "/problems/policy-violation", problem["type"])
}

func TestAPI_OrderFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/shops", gin.H{"name": "Shop"})
	shopID := decode(t, rec)["id"].(string)
	rec = doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
		"shopId": shopID, "name": "Honey", "price": 50, "inventory": 2, "homemadeTag": true,
	})
	productID := decode(t, rec)["id"].(string)

	rec = doJSON(t, router, http.MethodPost, "/v1/orders", gin.H{
		"shopId":          shopID,
		"items":           []gin.H{{"productId": productID, "quantity": 2}},
		"deliveryMethod":  "courier",
		"shippingAddress": "House 7, Road 2, Dhanmondi, Dhaka",
		"buyerEmail":      "buyer@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode(t, rec)
	require.Equal(t, "placed", order["status"])
	require.Equal(t, "label_pending", order["shipmentStatus"])
	require.Equal(t, float64(100), order["total"])
	require.InDelta(t, 7.0, order["fee"].(float64), 1e-9)
	require.InDelta(t, 93.0, order["payout"].(float64), 1e-9)
	require.NotEmpty(t, order["trackingNumber"])
	orderID := order["id"].(string)

	// Stock is exhausted now.
	rec = doJSON(t, router, http.MethodPost, "/v1/orders", gin.H{
		"shopId":         shopID,
		"items":          []gin.H{{"productId": productID, "quantity": 1}},
		"deliveryMethod": "pickup",
		"buyerEmail":     "buyer@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	problem := decode(t, rec)
	require.Equal(t, "/problems/insufficient-inventory", problem["type"])
	require.Equal(t, "Honey", problem["extensions"].(map[string]any)["product"])

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/v1/orders/%s", orderID), gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/v1/orders/%s", orderID), gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "in_transit", decode(t, rec)["shipmentStatus"])

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/v1/orders/%s", orderID), gin.H{"status": "placed"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/transactions?shopId="+shopID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var txs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txs))
	require.Len(t, txs, 1)
	require.Equal(t, "scheduled", txs[0]["settlementStatus"])

	rec = doJSON(t, router, http.MethodGet, "/v1/orders?shopId="+shopID+"&analytics=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode(t, rec)
	require.Equal(t, float64(100), summary["totalSales"])
	require.Equal(t, float64(1), summary["orderCount"])
}

func TestAPI_PricingEstimate(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/pricing/estimate", gin.H{
		"origin":      "dhaka",
		"destination": "chattogram",
		"size":        "medium",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	quote := decode(t, rec)
	require.Equal(t, float64(298), quote["distanceKm"])
	require.Equal(t, float64(249), quote["price"])

	rec = doJSON(t, router, http.MethodPost, "/v1/pricing/estimate", gin.H{
		"origin":      "dhaka",
		"destination": "dhaka",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "/problems/route-not-found", decode(t, rec)["type"])
}
