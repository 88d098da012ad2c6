package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin-core/internal/domain"
)

func defaultConfig(t *testing.T) Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)

	cfg, err := unmarshal(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPServerAddr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "catalog_admin", cfg.MongoDatabase)
	assert.Empty(t, cfg.RedisAddr)
}

func TestBuiltinTenantDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	require.Len(t, cfg.Tenants, 3)

	eco, ok := cfg.DefaultsFor("ECOSHIFTCORP")
	require.True(t, ok)
	assert.Equal(t, []string{"ECOSHIFT"}, eco.Brands)
	assert.Len(t, eco.Categories, 10)
	assert.Contains(t, eco.Categories, "LED BULB")
	assert.Contains(t, eco.Categories, "EMERGENCY LIGHT")

	_, ok = cfg.DefaultsFor("NOBODY")
	assert.False(t, ok)

	keys := cfg.TenantKeys()
	assert.Len(t, keys, 3)
	assert.Contains(t, keys, domain.Tenant("DISRUPTIVE"))
	assert.Contains(t, keys, domain.Tenant("VAH"))
}

func TestConfigFileOverridesTenants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
tenants:
  ACME:
    brands: [ACME]
    categories: [WIDGETS]
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := unmarshal(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPServerAddr, "unset keys keep their defaults")

	acme, ok := cfg.DefaultsFor("ACME")
	require.True(t, ok)
	assert.Equal(t, []string{"ACME"}, acme.Brands)
	assert.Equal(t, []string{"WIDGETS"}, acme.Categories)
}

func TestTenantKeysCanonicalized(t *testing.T) {
	// Viper lowercases map keys it reads from a file; the loader must hand
	// back keys in the canonical upper-cased form or runtime lookups by
	// tenant key would all miss.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tenants:
  EcoshiftCorp:
    brands: [ECOSHIFT]
    categories: [LED BULB]
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := unmarshal(v)
	require.NoError(t, err)

	for key := range cfg.Tenants {
		assert.Equal(t, strings.ToUpper(key), key, "tenant keys must be upper-cased")
	}

	eco, ok := cfg.DefaultsFor("ECOSHIFTCORP")
	require.True(t, ok)
	assert.Equal(t, []string{"ECOSHIFT"}, eco.Brands)
}
