package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-catalog/catalog/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("CATALOG_PAGE_SIZE", "25")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	cfg, err := config.Load(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
	require.NoError(t, err)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 25, cfg.Catalog.PageSize)
	require.Equal(t, 14*24*time.Hour, cfg.Catalog.SessionAge)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.False(t, cfg.Kafka.Enable)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_SECRET"))
	_, err := config.Load()
	require.Error(t, err)
}
