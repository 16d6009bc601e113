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
	defaultPort               = 8000
	defaultBcryptCost         = 12
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultMaxDistanceMeters  = 400.0
	defaultLocale             = "ja"
	defaultShelterLimit       = 3
	defaultMaxShelterLimit    = 20
	minShelterLimit           = 1
	defaultSQLitePath         = "hazardmap.db"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
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
		CORS struct {
			// AllowOrigins accepts a list or a single comma separated string.
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Risk configures the hazard lookup.
	Risk *RiskConfig `json:"risk" yaml:"risk"`

	Spatial *SpatialConfig `json:"spatial" yaml:"spatial"`

	Shelters *ShelterConfig `json:"shelters" yaml:"shelters"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// DatabaseConfig selects and tunes the gorm driver.
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `json:"driver" yaml:"driver"`

	// Postgres holds the master and replica connections for the postgres driver.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// SlowQueryThreshold marks queries logged as slow. Zero uses the default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// AutoMigrate creates or updates the schema on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// RiskConfig defines hazard lookup configuration
type RiskConfig struct {
	// Beyond this planar distance a lookup reports no match. Only 400 is accepted.
	MaxDistanceMeters float64 `json:"maxDistanceMeters" yaml:"maxDistanceMeters"`

	// DefaultLocale is used when Accept-Language is missing or unsupported.
	DefaultLocale string `json:"defaultLocale" yaml:"defaultLocale"`
}

// SpatialConfig selects the nearest-neighbour implementation.
type SpatialConfig struct {
	// Strategy is "linear" or "grid".
	Strategy string `json:"strategy" yaml:"strategy"`

	GridCellSizeMeters float64 `json:"gridCellSizeMeters" yaml:"gridCellSizeMeters"`
}

// ShelterConfig defines shelter ranking limits
type ShelterConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	// MaxLimit caps the requested count. Only 20 is accepted.
	MaxLimit int `json:"maxLimit" yaml:"maxLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "none", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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
			// Example: DATABASE_SQLITEPATH -> database.sqlitePath
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
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if replicas := buildReplicasFromEnv(); len(replicas) > 0 && cfg.Database.Postgres != nil {
		cfg.Database.Postgres.Replicas = replicas
	}

	return cfg, nil
}

// applyDefaults fills every section the YAML left out.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultPort
	}
	c.HTTP.CORS.AllowOrigins = CleanOrigins(c.HTTP.CORS.AllowOrigins)

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Driver == DriverSQLite && c.Database.SQLitePath == "" {
		c.Database.SQLitePath = defaultSQLitePath
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.AccessTokenTTL == 0 {
		c.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if c.Risk == nil {
		c.Risk = &RiskConfig{}
	}
	if c.Risk.MaxDistanceMeters <= 0 {
		c.Risk.MaxDistanceMeters = defaultMaxDistanceMeters
	}
	if c.Risk.DefaultLocale == "" {
		c.Risk.DefaultLocale = defaultLocale
	}

	if c.Spatial == nil {
		c.Spatial = &SpatialConfig{}
	}

	if c.Shelters == nil {
		c.Shelters = &ShelterConfig{}
	}
	if c.Shelters.MaxLimit <= 0 {
		c.Shelters.MaxLimit = defaultMaxShelterLimit
	}
	if c.Shelters.DefaultLimit <= 0 {
		c.Shelters.DefaultLimit = defaultShelterLimit
	}

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
}

// CleanOrigins splits comma separated entries, strips quotes, whitespace
// and trailing slashes, and drops empty values.
func CleanOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, origin := range strings.Split(entry, ",") {
			origin = strings.Trim(strings.TrimSpace(origin), `"'`)
			origin = strings.TrimRight(origin, "/")
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return origins
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

// validate rejects settings that would change the lookup contract: the match
// radius is fixed at 400 m and the shelter limit range at [1, 20].
func (c *Config) validate() error {
	if c.Risk.MaxDistanceMeters != defaultMaxDistanceMeters {
		return errors.Errorf("risk.maxDistanceMeters must be %v, got %v", defaultMaxDistanceMeters, c.Risk.MaxDistanceMeters)
	}
	if c.Shelters.MaxLimit != defaultMaxShelterLimit {
		return errors.Errorf("shelters.maxLimit must be %d, got %d", defaultMaxShelterLimit, c.Shelters.MaxLimit)
	}
	if c.Shelters.DefaultLimit < minShelterLimit || c.Shelters.DefaultLimit > c.Shelters.MaxLimit {
		return errors.Errorf("shelters.defaultLimit must be within [%d, %d], got %d",
			minShelterLimit, c.Shelters.MaxLimit, c.Shelters.DefaultLimit)
	}
	if c.Database.Driver == DriverPostgres && c.Database.Postgres == nil {
		return errors.New("database.postgres is required for the postgres driver")
	}

	return nil
}

// buildReplicasFromEnv builds replica configurations from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{FIELD}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT
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
