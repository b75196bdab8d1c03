package rates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salon-pay/salon_pay/internal/currency"
	"github.com/salon-pay/salon_pay/internal/logging"
)

type staticProvider struct {
	table currency.Table
	err   error
}

func (p staticProvider) Fetch(context.Context) (currency.Table, error) {
	return p.table, p.err
}

func TestServiceStartsWithFallbackTable(t *testing.T) {
	svc := New(staticProvider{}, nil, logging.Discard(), 0)

	table := svc.Table()
	assert.Equal(t, currency.FallbackBase, table.Base)
	assert.Len(t, table.Rates, 20)
}

func TestRefreshReplacesTableWholesale(t *testing.T) {
	fresh := currency.Table{Base: "AED", Rates: map[string]float64{"AED": 1, "USD": 0.28}}
	svc := New(staticProvider{table: fresh}, nil, logging.Discard(), 0)

	require.NoError(t, svc.Refresh(context.Background()))

	table := svc.Table()
	assert.Equal(t, 0.28, table.Rates["USD"])
	assert.Len(t, table.Rates, 2, "old entries must not survive a refresh")
}

func TestRefreshFailureKeepsCurrentTable(t *testing.T) {
	svc := New(staticProvider{err: context.DeadlineExceeded}, nil, logging.Discard(), 0)

	err := svc.Refresh(context.Background())
	require.Error(t, err)

	table := svc.Table()
	assert.Len(t, table.Rates, 20, "fallback table must survive a failed refresh")
}

func TestRefreshFailureRestoresRedisSnapshot(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	ctx := context.Background()
	fresh := currency.Table{Base: "AED", Rates: map[string]float64{"AED": 1, "USD": 0.29}}

	good := New(staticProvider{table: fresh}, cache, logging.Discard(), 0)
	require.NoError(t, good.Refresh(ctx))

	// A new service instance (fresh process) whose provider is down should
	// pick up the snapshot persisted by the previous one.
	bad := New(staticProvider{err: context.DeadlineExceeded}, cache, logging.Discard(), 0)
	require.Error(t, bad.Refresh(ctx))

	table := bad.Table()
	assert.Equal(t, 0.29, table.Rates["USD"])
	assert.Len(t, table.Rates, 2)
}

func TestTableReturnsIndependentCopy(t *testing.T) {
	svc := New(staticProvider{}, nil, logging.Discard(), 0)

	table := svc.Table()
	table.Rates["USD"] = 42

	assert.NotEqual(t, 42.0, svc.Table().Rates["USD"])
}

func TestHTTPProviderFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(map[string]any{
			"base":  "AED",
			"rates": map[string]float64{"AED": 1, "USD": 0.27},
		})
	}))
	defer ts.Close()

	provider := NewHTTPProvider(ts.URL, "AED")
	table, err := provider.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AED", table.Base)
	assert.Equal(t, 0.27, table.Rates["USD"])
}

func TestHTTPProviderRejectsBadResponses(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
		{"empty rates", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"rates": map[string]float64{}})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			provider := NewHTTPProvider(ts.URL, "AED")
			_, err := provider.Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}
