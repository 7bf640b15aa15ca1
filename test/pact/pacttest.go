//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "delibro-api"
	ConsumerName = "seller-portal"

	StateMarketplaceBaseline = "marketplace baseline"
	StateShopExists          = "shop shop-101 exists"
	StateRoutesAvailable     = "pricing routes available"
)

const (
	ExistingShopID = "shop-101"

	exampleShopName   = "Nila's Kitchen"
	exampleOrigin     = "dhaka"
	exampleHubKm      = 298
	exampleHubDest    = "chattogram"
	exampleQuotePrice = 249
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the seller portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleShopPayload provides stable test data for shop interactions.
func ExampleShopPayload() map[string]any {
	return map[string]any{
		"name":              exampleShopName,
		"sellerType":        "individual",
		"craftsmanship":     "handmade",
		"profile":           "Small-batch pickles and preserves.",
		"pickupAddress":     "House 7, Road 2, Dhanmondi, Dhaka",
		"contactEmail":      "nila@example.pact",
		"minimumOrderValue": 50,
	}
}

// ExampleEstimatePayload provides a curated route for pricing interactions.
func ExampleEstimatePayload() map[string]any {
	return map[string]any{
		"origin":      exampleOrigin,
		"destination": exampleHubDest,
		"size":        "medium",
	}
}

// ExampleQuotePayload is the quote the route above resolves to.
func ExampleQuotePayload() map[string]any {
	return map[string]any{
		"origin":      exampleOrigin,
		"destination": exampleHubDest,
		"distanceKm":  exampleHubKm,
		"size":        "medium",
		"price":       exampleQuotePrice,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
