package config

import (
	"errors"
	"fmt"
	"os"

	"catalog-admin-core/internal/domain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CATALOG_CONFIG_FILE"

// TenantDefaults is the built-in taxonomy seeded for a tenant on first
// access. Defaults are configuration data, not logic: adding a tenant is a
// config change, not a code change.
type TenantDefaults struct {
	Brands     []string `mapstructure:"brands"`
	Categories []string `mapstructure:"categories"`
}

type cloudinary struct {
	CloudName    string `mapstructure:"cloud_name"`
	UploadPreset string `mapstructure:"upload_preset"`
}

type Config struct {
	LogLevel       string                    `mapstructure:"log_level"`
	HTTPServerAddr string                    `mapstructure:"http_server_addr"`
	MongoURI       string                    `mapstructure:"mongo_uri"`
	MongoDatabase  string                    `mapstructure:"mongo_database"`
	RedisAddr      string                    `mapstructure:"redis_addr"`
	Cloudinary     cloudinary                `mapstructure:"cloudinary"`
	Tenants        map[string]TenantDefaults `mapstructure:"tenants"`
}

// Load reads the config file named by --config or CATALOG_CONFIG_FILE. A
// missing file is fine: every setting has a default, including the tenant
// taxonomy defaults.
func Load() Config {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(getConfigFilepath())
	if err := v.ReadInConfig(); err != nil {
		var notFound *os.PathError
		if !errors.As(err, &notFound) {
			die(err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		die(err)
	}
	return cfg
}

// unmarshal decodes v into a Config and canonicalizes the tenant keys. Viper
// lowercases map keys read from a config file, while tenant lookups use the
// upper-cased form; without the rewrite a `tenants:` entry from a file would
// never match at runtime.
func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	tenants := make(map[string]TenantDefaults, len(cfg.Tenants))
	for k, d := range cfg.Tenants {
		tenants[domain.NormalizeName(k)] = d
	}
	cfg.Tenants = tenants

	return cfg, nil
}

// DefaultsFor returns the seeded taxonomy for a tenant.
func (c Config) DefaultsFor(tenant domain.Tenant) (TenantDefaults, bool) {
	d, ok := c.Tenants[string(tenant)]
	return d, ok
}

// TenantKeys returns the configured tenant keys.
func (c Config) TenantKeys() []domain.Tenant {
	keys := make([]domain.Tenant, 0, len(c.Tenants))
	for k := range c.Tenants {
		keys = append(keys, domain.Tenant(k))
	}
	return keys
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "catalog_admin")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cloudinary.cloud_name", "")
	v.SetDefault("cloudinary.upload_preset", "")
	v.SetDefault("tenants", builtinTenantDefaults())
}

// builtinTenantDefaults is the fallback mapping used when the config file
// carries no tenants section.
func builtinTenantDefaults() map[string]map[string][]string {
	return map[string]map[string][]string{
		"ECOSHIFTCORP": {
			"brands": {"ECOSHIFT"},
			"categories": {
				"LED BULB",
				"LED TUBE LIGHT",
				"LED PANEL LIGHT",
				"LED DOWNLIGHT",
				"LED FLOODLIGHT",
				"LED HIGH BAY",
				"LED STREET LIGHT",
				"LED TRACK LIGHT",
				"SOLAR LIGHT",
				"EMERGENCY LIGHT",
			},
		},
		"DISRUPTIVE": {
			"brands":     {"DISRUPTIVE SOLUTIONS"},
			"categories": {"WEB DESIGN", "BRANDING", "SEO", "E-COMMERCE"},
		},
		"VAH": {
			"brands":     {"VAH"},
			"categories": {"FURNITURE", "DECOR", "LIGHTING"},
		},
	}
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}
