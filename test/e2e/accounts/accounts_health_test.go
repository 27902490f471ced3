package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies both probes on a fresh container.
func TestHealthEndpoints(t *testing.T) {
	client := setupAccountsContainer(t)

	live, err := client.GetLiveness(t.Context())
	assertHealthy(t, live, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.Equal(t, "ok", ready.Checks.Database)

	t.Logf("service version %s, uptime %s", ready.Version, ready.Uptime)
}
