package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	viper "github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cf, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "8080", cf.ServerPort)
	require.Equal(t, "http://localhost:5000/api", cf.ApiBaseUrl)
	require.Equal(t, 15*time.Second, cf.ApiTimeout)
	require.Equal(t, 60*time.Second, cf.CatalogCacheTTL)
	require.Equal(t, "token_bucket", cf.RateLimitType)
	require.Equal(t, 60, cf.RateLimitCapacity)
	require.Equal(t, 30*time.Minute, cf.SessionIdleTTL)
	require.Empty(t, cf.Brokers())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SERVER_PORT=9000\nKAFKA_BROKERS=kafka-1:9092, kafka-2:9092\nRATE_LIMIT_RATE=2.5\nSESSION_COOKIE_SECURE=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("API_TIMEOUT", "5s")

	cf, err := Load(viper.New(), path)
	require.NoError(t, err)

	require.Equal(t, "9000", cf.ServerPort)
	require.Equal(t, 5*time.Second, cf.ApiTimeout)
	require.Equal(t, 2.5, cf.RateLimitRate)
	require.True(t, cf.SessionCookieSecure)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cf.Brokers())
}
