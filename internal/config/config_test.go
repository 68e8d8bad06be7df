package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"num_market/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":3000", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("https://nbcmcc.cn/optimization/api/query_new", cfg.Inventory.URL)
	rq.Empty(cfg.Inventory.Token)
	rq.Equal("http://localhost:3000/api/numbers", cfg.Browser.APIURL)
	rq.Equal(3, cfg.Browser.PrefetchDistance)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("INVENTORY_URL", "http://127.0.0.1:8080/query")
	t.Setenv("INVENTORY_TOKEN", "secret")
	t.Setenv("INVENTORY_TIMEOUT", "2s")
	t.Setenv("BROWSER_PREFETCH_DISTANCE", "5")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("http://127.0.0.1:8080/query", cfg.Inventory.URL)
	rq.Equal("secret", cfg.Inventory.Token)
	rq.Equal(2*time.Second, cfg.Inventory.Timeout)
	rq.Equal(5, cfg.Browser.PrefetchDistance)
}

func TestLoadInvalid(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "soon")

	_, err := config.Load()
	rq.ErrorContains(err, "env.Parse")
}
