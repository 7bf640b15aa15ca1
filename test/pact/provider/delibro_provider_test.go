//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/delibro/delibro/test/pact"

	delibroserver "github.com/delibro/delibro/go"
	marketmemory "github.com/delibro/delibro/internal/domains/marketplace/adapters/memory"
	marketobs "github.com/delibro/delibro/internal/domains/marketplace/adapters/observability"
	marketapp "github.com/delibro/delibro/internal/domains/marketplace/application"
	marketdomain "github.com/delibro/delibro/internal/domains/marketplace/domain"
	pricingapp "github.com/delibro/delibro/internal/domains/pricing/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestDelibroProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateMarketplaceBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateShopExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedShop(t, pacttest.ExistingShopID)
			}
			return nil, nil
		},
		pacttest.StateRoutesAvailable: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	ledger *marketmemory.Ledger
	server *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	ledger := marketmemory.NewLedger()
	marketService := marketobs.New(marketapp.NewService(ledger))
	pricingService := pricingapp.NewService()

	handlers := delibroserver.ApiHandleFunctions{
		ShopAPI:       delibroserver.NewShopAPI(marketService),
		ProductAPI:    delibroserver.NewProductAPI(marketService),
		OrderAPI:      delibroserver.NewOrderAPI(marketService),
		SettlementAPI: delibroserver.NewSettlementAPI(marketService),
		ModerationAPI: delibroserver.NewModerationAPI(marketService),
		PricingAPI:    delibroserver.NewPricingAPI(pricingService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = delibroserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		ledger: ledger,
		server: server,
	}
}

func (a *contractProviderApp) seedShop(t testing.TB, id string) {
	t.Helper()
	shop, err := marketdomain.NewShop(id, "Nila's Kitchen", marketdomain.SellerIndividual, marketdomain.CraftHandmade, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, shop.SetMinimumOrderValue(50))
	_, err = a.ledger.SaveShop(context.Background(), shop)
	require.NoError(t, err)
}
