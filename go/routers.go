package delibroserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the per-context API handlers.
type ApiHandleFunctions struct {
	ShopAPI       ShopAPI
	ProductAPI    ProductAPI
	OrderAPI      OrderAPI
	SettlementAPI SettlementAPI
	ModerationAPI ModerationAPI
	PricingAPI    PricingAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the delibro routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultFunc(c *gin.Context) {}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"CreateShop",
			http.MethodPost,
			"/v1/shops",
			handleFunctions.ShopAPI.CreateShop,
		},
		{
			"ListShops",
			http.MethodGet,
			"/v1/shops",
			handleFunctions.ShopAPI.ListShops,
		},
		{
			"CreateProduct",
			http.MethodPost,
			"/v1/products",
			handleFunctions.ProductAPI.CreateProduct,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/v1/products",
			handleFunctions.ProductAPI.ListProducts,
		},
		{
			"UpdateProduct",
			http.MethodPatch,
			"/v1/products/:productId",
			handleFunctions.ProductAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/v1/products/:productId",
			handleFunctions.ProductAPI.DeleteProduct,
		},
		{
			"CreateOrder",
			http.MethodPost,
			"/v1/orders",
			handleFunctions.OrderAPI.CreateOrder,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/v1/orders",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"UpdateOrder",
			http.MethodPatch,
			"/v1/orders/:orderId",
			handleFunctions.OrderAPI.UpdateOrder,
		},
		{
			"ListTransactions",
			http.MethodGet,
			"/v1/transactions",
			handleFunctions.SettlementAPI.ListTransactions,
		},
		{
			"SettleTransaction",
			http.MethodPost,
			"/v1/transactions/:transactionId/settle",
			handleFunctions.SettlementAPI.SettleTransaction,
		},
		{
			"ListNotifications",
			http.MethodGet,
			"/v1/notifications",
			handleFunctions.SettlementAPI.ListNotifications,
		},
		{
			"ListModerationFlags",
			http.MethodGet,
			"/v1/moderation",
			handleFunctions.ModerationAPI.ListFlags,
		},
		{
			"EstimatePrice",
			http.MethodPost,
			"/v1/pricing/estimate",
			handleFunctions.PricingAPI.Estimate,
		},
		{
			"ListPricingLocations",
			http.MethodGet,
			"/v1/pricing/locations",
			handleFunctions.PricingAPI.Locations,
		},
	}
}
