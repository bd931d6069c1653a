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
	defaultPath                = "."
	defaultMaxRequestBodySize  = "100KB"
	defaultStoreDriver         = "postgres"
	defaultMongoConnectTimeout = 10 * time.Second
)

// Deployment environments where production-only checks are relaxed.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker serves the catalog event push endpoint; a zero port falls back to http.port
	Worker struct {
		Port     int    `json:"port" yaml:"port"`
		PushPath string `json:"pushPath" yaml:"pushPath"`
	} `json:"worker" yaml:"worker"`

	// Store selects the entity store backend
	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Mongo configuration, used when store.driver is "mongo"
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// SecretKey.Operator verifies operator tokens issued by the external auth service
	SecretKey struct {
		Operator string `json:"operator" yaml:"operator"`
	} `json:"secretKey" yaml:"secretKey"`

	// Catalog configuration for queries, submissions and slugs
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// PubSub configuration for catalog event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for cafe share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which entity store backend is used
type StoreConfig struct {
	// Driver is one of "postgres", "mongo" or "memory"
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate creates the schema and indexes on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold marks statements logged as slow; zero uses the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// MongoConfig defines MongoDB connection configuration
type MongoConfig struct {
	URI               string        `json:"uri" yaml:"uri"`
	Database          string        `json:"database" yaml:"database"`
	CafeCollection    string        `json:"cafeCollection" yaml:"cafeCollection"`
	ReviewCollection  string        `json:"reviewCollection" yaml:"reviewCollection"`
	ContactCollection string        `json:"contactCollection" yaml:"contactCollection"`
	ConnectTimeout    time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// CatalogConfig defines query defaults and submission policy
type CatalogConfig struct {
	// Default location for public submissions, which are not asked to pin a map location
	DefaultCenter struct {
		Lng float64 `json:"lng" yaml:"lng"`
		Lat float64 `json:"lat" yaml:"lat"`
	} `json:"defaultCenter" yaml:"defaultCenter"`

	// Radius in meters used when a center is given without a radius
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`
	MaxRadius     float64 `json:"maxRadius" yaml:"maxRadius"`

	DefaultPageSize       int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize           int `json:"maxPageSize" yaml:"maxPageSize"`
	DefaultReviewPageSize int `json:"defaultReviewPageSize" yaml:"defaultReviewPageSize"`

	// Upper bound on numeric slug suffixes tried before a submission fails with a conflict
	MaxSlugAttempts int `json:"maxSlugAttempts" yaml:"maxSlugAttempts"`

	// Description template for submissions without one; %s is replaced by the cafe name
	DefaultDescription string   `json:"defaultDescription" yaml:"defaultDescription"`
	SubmissionTags     []string `json:"submissionTags" yaml:"submissionTags"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines share code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// DefaultCatalogConfig returns the catalog defaults, centered on Da Lat.
func DefaultCatalogConfig() *CatalogConfig {
	cfg := &CatalogConfig{
		DefaultRadius:         5000,
		MaxRadius:             50000,
		DefaultPageSize:       20,
		MaxPageSize:           100,
		DefaultReviewPageSize: 50,
		MaxSlugAttempts:       20,
		DefaultDescription:    "%s - Quán cà phê tại Đà Lạt",
		SubmissionTags:        []string{"coffee", "da-lat", "user-submitted"},
	}
	cfg.DefaultCenter.Lng = 108.4378
	cfg.DefaultCenter.Lat = 11.9404

	return cfg
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env.Env == EnvLocal || c.Env.Env == EnvDevelop
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills unset sections so the rest of the app can rely on them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = defaultStoreDriver
	}

	if cfg.Mongo != nil {
		applyMongoDefaults(cfg.Mongo)
	}

	defaults := DefaultCatalogConfig()
	if cfg.Catalog == nil {
		cfg.Catalog = defaults

		return
	}
	if cfg.Catalog.DefaultCenter.Lng == 0 && cfg.Catalog.DefaultCenter.Lat == 0 {
		cfg.Catalog.DefaultCenter = defaults.DefaultCenter
	}
	if cfg.Catalog.DefaultRadius <= 0 {
		cfg.Catalog.DefaultRadius = defaults.DefaultRadius
	}
	if cfg.Catalog.MaxRadius <= 0 {
		cfg.Catalog.MaxRadius = defaults.MaxRadius
	}
	if cfg.Catalog.DefaultPageSize <= 0 {
		cfg.Catalog.DefaultPageSize = defaults.DefaultPageSize
	}
	if cfg.Catalog.MaxPageSize <= 0 {
		cfg.Catalog.MaxPageSize = defaults.MaxPageSize
	}
	if cfg.Catalog.DefaultReviewPageSize <= 0 {
		cfg.Catalog.DefaultReviewPageSize = defaults.DefaultReviewPageSize
	}
	if cfg.Catalog.MaxSlugAttempts <= 0 {
		cfg.Catalog.MaxSlugAttempts = defaults.MaxSlugAttempts
	}
	if cfg.Catalog.DefaultDescription == "" {
		cfg.Catalog.DefaultDescription = defaults.DefaultDescription
	}
	if cfg.Catalog.SubmissionTags == nil {
		cfg.Catalog.SubmissionTags = defaults.SubmissionTags
	}
}

func applyMongoDefaults(m *MongoConfig) {
	if m.Database == "" {
		m.Database = "cafemap"
	}
	if m.CafeCollection == "" {
		m.CafeCollection = "cafes"
	}
	if m.ReviewCollection == "" {
		m.ReviewCollection = "reviews"
	}
	if m.ContactCollection == "" {
		m.ContactCollection = "submitter_contacts"
	}
	if m.ConnectTimeout <= 0 {
		m.ConnectTimeout = defaultMongoConnectTimeout
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
