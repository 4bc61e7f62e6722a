package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.Equal(t, ImageStorageLocal, cfg.Images.Backend)
	assert.Empty(t, cfg.Features)
}

func TestFromViper_OverridesDesdeEnv(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "LOCAL")
	v.Set("HTTP_PORT", "9090")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("FEATURE_ONLINE_SHOPPING", "true")
	v.Set("FEATURE_WHATSAPP_ORDER", "0")
	v.Set("PUBLIC_BASE_URL", "https://cjstore.app/")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverLocal, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "https://cjstore.app", cfg.App.PublicBaseURL)
	assert.Equal(t, map[string]bool{"onlineShopping": true, "whatsappOrder": false}, cfg.Features)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_S3SinBucket(t *testing.T) {
	v := viper.New()
	v.Set("IMAGE_STORAGE", "s3")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "cjstore", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/cjstore?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
