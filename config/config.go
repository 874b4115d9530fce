package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultOperationTimeout   = 5 * time.Second
	defaultAnalyticsTimeout   = 10 * time.Second
	defaultMetricsPath        = "/metrics"
	defaultMongoDatabase      = "financial-twin"
	defaultMongoCollection    = "users"
	defaultMarketDataTTL      = 30 * time.Second
	defaultCityTier           = "Tier-1"
	defaultPlaceholderState   = "Unknown"
	defaultFallbackEstimate   = 25000
	defaultFallbackNote       = "ML Service Unavailable, using default"
)

// Storage drivers accepted by storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Mongo configuration, used when storage.driver is "mongo"
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Redis configuration for the market data cache (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`

	CostOfLiving CostOfLivingConfig `json:"costOfLiving" yaml:"costOfLiving"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the profile store backend
type StorageConfig struct {
	Driver           string        `json:"driver" yaml:"driver"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
}

// MongoConfig defines the MongoDB connection used for profile documents
type MongoConfig struct {
	URI        string `json:"uri" yaml:"uri"`
	Database   string `json:"database" yaml:"database"`
	Collection string `json:"collection" yaml:"collection"`
}

// RedisConfig defines the Redis connection used to cache market data
type RedisConfig struct {
	Addr          string        `json:"addr" yaml:"addr"`
	Password      string        `json:"password" yaml:"password"`
	DB            int           `json:"db" yaml:"db"`
	MarketDataTTL time.Duration `json:"marketDataTTL" yaml:"marketDataTTL"`
}

// AnalyticsConfig defines how the external analytics service is reached
type AnalyticsConfig struct {
	// Base URL of the analytics service, e.g. http://localhost:8000
	BaseURL string `json:"baseURL" yaml:"baseURL"`

	// Upper bound for a single upstream call
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig tunes the per-endpoint circuit breakers
type BreakerConfig struct {
	MaxRequests         uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval            time.Duration `json:"interval" yaml:"interval"`
	OpenTimeout         time.Duration `json:"openTimeout" yaml:"openTimeout"`
	ConsecutiveFailures uint32        `json:"consecutiveFailures" yaml:"consecutiveFailures"`
}

// CostOfLivingConfig defines request defaults and the degraded response
type CostOfLivingConfig struct {
	DefaultCityTier  string  `json:"defaultCityTier" yaml:"defaultCityTier"`
	PlaceholderState string  `json:"placeholderState" yaml:"placeholderState"`
	FallbackEstimate float64 `json:"fallbackEstimate" yaml:"fallbackEstimate"`
	FallbackNote     string  `json:"fallbackNote" yaml:"fallbackNote"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML values.
	// ANALYTICS_BASEURL -> analytics.baseURL
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case "":
		cfg.Storage.Driver = StorageDriverMemory
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres config is required for postgres storage driver")
		}
	case StorageDriverMongo:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" {
			return errors.New("mongo.uri is required for mongo storage driver")
		}
	case StorageDriverMemory:
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
	if cfg.Storage.OperationTimeout <= 0 {
		cfg.Storage.OperationTimeout = defaultOperationTimeout
	}

	if cfg.Mongo != nil {
		if cfg.Mongo.Database == "" {
			cfg.Mongo.Database = defaultMongoDatabase
		}
		if cfg.Mongo.Collection == "" {
			cfg.Mongo.Collection = defaultMongoCollection
		}
	}

	if cfg.Redis != nil && cfg.Redis.MarketDataTTL <= 0 {
		cfg.Redis.MarketDataTTL = defaultMarketDataTTL
	}

	if strings.TrimSpace(cfg.Analytics.BaseURL) == "" {
		return errors.New("analytics.baseURL is required")
	}
	cfg.Analytics.BaseURL = strings.TrimRight(cfg.Analytics.BaseURL, "/")
	if cfg.Analytics.Timeout <= 0 {
		cfg.Analytics.Timeout = defaultAnalyticsTimeout
	}

	if cfg.CostOfLiving.DefaultCityTier == "" {
		cfg.CostOfLiving.DefaultCityTier = defaultCityTier
	}
	if cfg.CostOfLiving.PlaceholderState == "" {
		cfg.CostOfLiving.PlaceholderState = defaultPlaceholderState
	}
	if cfg.CostOfLiving.FallbackEstimate <= 0 {
		cfg.CostOfLiving.FallbackEstimate = defaultFallbackEstimate
	}
	if cfg.CostOfLiving.FallbackNote == "" {
		cfg.CostOfLiving.FallbackNote = defaultFallbackNote
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds read replicas from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
