// Package config provides configuration management for the addon.
package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
)

const defaultConfigFile = "config.json"

// Config holds the process-wide configuration. Values come from
// built-in defaults, then an optional JSON file, then environment
// variables, later sources winning.
type Config struct {
	Port              string        `json:"PORT"`
	DatabasePath      string        `json:"DATABASE_PATH"`
	RefreshInterval   time.Duration `json:"-"`
	UseCache          bool          `json:"-"`
	ForceRefresh      bool          `json:"-"`
	Top10ProxyCountry string        `json:"TOP10_PROXY_COUNTRY"`
	LogLevel          string        `json:"LOG_LEVEL"`

	// File-only string forms of the non-string fields above.
	RefreshIntervalRaw string `json:"REFRESH_INTERVAL"`
	UseCacheRaw        string `json:"USE_CACHE"`
	ForceRefreshRaw    string `json:"FORCE_REFRESH"`
}

// Load builds the configuration from defaults, the optional config
// file named by CONFIG_FILE, and environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              constants.DefaultPort,
		DatabasePath:      "./cache.db",
		RefreshInterval:   constants.ProviderCatalogTTL,
		UseCache:          true,
		Top10ProxyCountry: constants.DefaultTop10ProxyCountry,
		LogLevel:          constants.DefaultLogLevel,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}
	c.applyRaw(c.RefreshIntervalRaw, c.UseCacheRaw, c.ForceRefreshRaw)
	return nil
}

func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		c.DatabasePath = dbPath
	}
	if country := os.Getenv("TOP10_PROXY_COUNTRY"); country != "" {
		c.Top10ProxyCountry = country
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	c.applyRaw(os.Getenv("REFRESH_INTERVAL"), os.Getenv("USE_CACHE"), os.Getenv("FORCE_REFRESH"))
}

// applyRaw folds string-typed settings into their typed fields, leaving
// the current value in place when a setting is empty or malformed.
func (c *Config) applyRaw(refresh, useCache, forceRefresh string) {
	if refresh != "" {
		if d, err := time.ParseDuration(refresh); err == nil && d > 0 {
			c.RefreshInterval = d
		}
	}
	if useCache != "" {
		c.UseCache = useCache != "false"
	}
	if forceRefresh != "" {
		c.ForceRefresh = forceRefresh == "true"
	}
}

func (c *Config) validate() error {
	c.Top10ProxyCountry = strings.ToUpper(strings.TrimSpace(c.Top10ProxyCountry))
	if len(c.Top10ProxyCountry) != 2 {
		return fmt.Errorf("TOP10_PROXY_COUNTRY must be a two-letter country code, got %q", c.Top10ProxyCountry)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// UserConfig is the per-install configuration carried in the addon URL:
// a base64 string of colon-separated fields.
type UserConfig struct {
	Providers        []string
	RPDBKey          string
	CountryCode      string
	InstalledAt      string
	Top10Global      bool
	Top10Country     bool
	Top10CountryCode string
	Language         string
}

// ParseUserConfig decodes the configuration path segment. Unknown or
// missing fields fall back to defaults; a completely broken string
// yields the default configuration rather than an error, matching the
// permissive behavior clients depend on.
func ParseUserConfig(configuration string) *UserConfig {
	if strings.Contains(configuration, "%") {
		if decoded, err := url.QueryUnescape(configuration); err == nil {
			configuration = decoded
		}
	}

	raw, err := base64.StdEncoding.DecodeString(configuration)
	if err != nil {
		raw = nil
	}

	fields := strings.Split(string(raw), ":")
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	providers := get(0)
	rpdbKey := get(1)
	countryCode := get(2)
	installedAt := get(3)
	top10Global := get(4)
	top10Country := get(5)
	top10CountryCode := get(6)
	language := get(7)

	// Older installs put the install timestamp where the RPDB key now
	// lives. Those timestamps all start with "16".
	if strings.HasPrefix(rpdbKey, "16") {
		installedAt = rpdbKey
		rpdbKey = ""
	}

	uc := &UserConfig{
		RPDBKey:          rpdbKey,
		CountryCode:      countryCode,
		InstalledAt:      installedAt,
		Top10Global:      top10Global == "" || top10Global == "1",
		Top10Country:     top10Country == "1",
		Top10CountryCode: top10CountryCode,
		Language:         language,
	}

	if uc.Language == "" {
		uc.Language = "en"
	}

	for _, code := range strings.Split(providers, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if canonical, ok := constants.LegacyProviderAliases[code]; ok {
			code = canonical
		}
		uc.Providers = append(uc.Providers, code)
	}

	return uc
}
