package clientdir_test

import (
	"testing"

	"github.com/harborlane/clientdir/pkg/clientsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint responds once the
// container is up.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	health, err := sdk.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the
// database as reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	health, err := sdk.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	if health.Checks == nil || health.Checks.Database != "ok" {
		t.Fatalf("expected database check ok, got %+v", health.Checks)
	}

	t.Logf("Readyz endpoint is healthy")
}
