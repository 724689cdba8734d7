// README: Config loader (viper, NEXA_* env vars with defaults) for HTTP, maps, storage and pricing.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"nexaride/internal/modules/pricing"
)

const envPrefix = "NEXA"

type Config struct {
	App struct {
		Env string
	}
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	Maps struct {
		APIKey         string
		BrowserKey     string
		Language       string
		Region         string
		RoutingTimeout time.Duration
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr     string
		RouteTTL time.Duration
	}
	Kafka struct {
		Brokers []string
		Topic   string
	}
	Admin struct {
		Username string
		Password string
	}
	Pricing pricing.Rates
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// Load reads NEXA_* environment variables on top of defaults. A .env file in the
// working directory (keys without the prefix) is read first when present.
func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	var cfg Config
	var errs []error

	cfg.App.Env = v.GetString("app_env")
	cfg.HTTP.Addr = v.GetString("http_addr")
	cfg.HTTP.CORSOrigins = splitList(v.GetString("cors_origins"))

	cfg.Maps.APIKey = v.GetString("maps_api_key")
	cfg.Maps.BrowserKey = v.GetString("maps_browser_key")
	cfg.Maps.Language = v.GetString("maps_language")
	cfg.Maps.Region = v.GetString("maps_region")
	cfg.Maps.RoutingTimeout = durationOf(v, "routing_timeout", &errs)

	cfg.DB.DSN = v.GetString("db_dsn")
	cfg.Redis.Addr = v.GetString("redis_addr")
	cfg.Redis.RouteTTL = durationOf(v, "route_cache_ttl", &errs)

	cfg.Kafka.Brokers = splitList(v.GetString("kafka_brokers"))
	cfg.Kafka.Topic = v.GetString("kafka_topic")

	cfg.Admin.Username = v.GetString("admin_username")
	cfg.Admin.Password = v.GetString("admin_password")

	cfg.Pricing = pricing.Rates{
		BaseFare:      floatOf(v, "price_base_fare", &errs),
		PerKm:         floatOf(v, "price_per_km", &errs),
		PerMinute:     floatOf(v, "price_per_minute", &errs),
		StopSurcharge: floatOf(v, "price_stop_surcharge", &errs),
		MinimumFare:   intOf(v, "price_minimum_fare", &errs),
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	rates := pricing.DefaultRates()
	v.SetDefault("app_env", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("maps_api_key", "")
	v.SetDefault("maps_browser_key", "")
	v.SetDefault("maps_language", "it")
	v.SetDefault("maps_region", "it")
	v.SetDefault("routing_timeout", "3s")
	v.SetDefault("db_dsn", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("route_cache_ttl", "6h")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "quote.issued")
	v.SetDefault("admin_username", "")
	v.SetDefault("admin_password", "")
	v.SetDefault("price_base_fare", rates.BaseFare)
	v.SetDefault("price_per_km", rates.PerKm)
	v.SetDefault("price_per_minute", rates.PerMinute)
	v.SetDefault("price_stop_surcharge", rates.StopSurcharge)
	v.SetDefault("price_minimum_fare", rates.MinimumFare)
}

func (c Config) validate() error {
	if c.Maps.RoutingTimeout <= 0 {
		return fmt.Errorf("%s_ROUTING_TIMEOUT must be positive", envPrefix)
	}
	if c.Redis.RouteTTL <= 0 {
		return fmt.Errorf("%s_ROUTE_CACHE_TTL must be positive", envPrefix)
	}
	r := c.Pricing
	if r.BaseFare < 0 || r.PerKm < 0 || r.PerMinute < 0 || r.StopSurcharge < 0 || r.MinimumFare < 0 {
		return fmt.Errorf("%s_PRICE_* values must not be negative", envPrefix)
	}
	if c.Admin.Username != "" && c.Admin.Password == "" {
		return fmt.Errorf("%s_ADMIN_PASSWORD is required when %s_ADMIN_USERNAME is set", envPrefix, envPrefix)
	}
	return nil
}

func durationOf(v *viper.Viper, key string, errs *[]error) time.Duration {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(key), err))
	}
	return d
}

func floatOf(v *viper.Viper, key string, errs *[]error) float64 {
	f, err := cast.ToFloat64E(v.Get(key))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(key), err))
	}
	return f
}

func intOf(v *viper.Viper, key string, errs *[]error) int {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s_%s: %w", envPrefix, strings.ToUpper(key), err))
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
