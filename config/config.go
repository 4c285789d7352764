package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// Defaults for the tunables the settings store is expected to supply.
const (
	DefaultScanInterval      = 5 * time.Second
	DefaultUploadInterval    = 60 * time.Second
	DefaultQueueLimit        = 1000
	DefaultSightingLimit     = 10000
	DefaultRetentionDays     = 30
	DefaultUploadedTTL       = 24 * time.Hour
	DefaultWhitelistInterval = 10 * time.Minute
	DefaultReuseDistanceM    = 50.0
	DefaultConnectTimeout    = 30 * time.Second
	DefaultRequestTimeout    = 60 * time.Second
	DefaultMaxBackoff        = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SQLite struct {
		// Path of the on-device database file. ":memory:" is accepted for
		// throwaway runs.
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	Gateway struct {
		// ID is this client's stable identity sent with every upload batch.
		// When empty an ephemeral one is generated at startup.
		ID string `json:"id" yaml:"id"`
	} `json:"gateway" yaml:"gateway"`

	Scan *ScanConfig `json:"scan" yaml:"scan"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Whitelist *WhitelistConfig `json:"whitelist" yaml:"whitelist"`

	Location *LocationConfig `json:"location" yaml:"location"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ScanConfig describes the cadence expected from the scan source.
type ScanConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// UploadConfig defines the upload pipeline tunables.
type UploadConfig struct {
	// Interval between upload cycles.
	Interval time.Duration `json:"interval" yaml:"interval"`

	// PrimaryURL is the collector endpoint tried first.
	PrimaryURL string `json:"primaryUrl" yaml:"primaryUrl"`

	// FallbackURL is tried with the same payload when the primary fails.
	FallbackURL string `json:"fallbackUrl" yaml:"fallbackUrl"`

	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// MaxBackoff caps the exponential backoff applied after failed cycles.
	MaxBackoff time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
}

// CacheConfig bounds the durable footprint of the two local tables.
type CacheConfig struct {
	// QueueLimit is the hard row cap of the upload queue, enforced oldest
	// first irrespective of status.
	QueueLimit int `json:"queueLimit" yaml:"queueLimit"`

	// SightingLimit is the rolling cap of the sighting history.
	SightingLimit int `json:"sightingLimit" yaml:"sightingLimit"`

	// RetentionDays is the age horizon for sighting history.
	RetentionDays int `json:"retentionDays" yaml:"retentionDays"`

	// UploadedTTL is how long uploaded queue rows are kept before purging.
	UploadedTTL time.Duration `json:"uploadedTtl" yaml:"uploadedTtl"`
}

// WhitelistConfig defines the allow-list sync collaborator.
type WhitelistConfig struct {
	URL          string        `json:"url" yaml:"url"`
	SyncInterval time.Duration `json:"syncInterval" yaml:"syncInterval"`
}

// LocationConfig selects and tunes the position collaborator.
type LocationConfig struct {
	// Source is "static" for a fixed-position gateway or "http" for a local
	// positioning endpoint.
	Source string `json:"source" yaml:"source"`

	// URL of the positioning endpoint (http source).
	URL string `json:"url" yaml:"url"`

	// Latitude/Longitude of a fixed installation (static source).
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	// ReuseDistanceMeters reuses the previous fix when the device moved less
	// than this distance.
	ReuseDistanceMeters float64 `json:"reuseDistanceMeters" yaml:"reuseDistanceMeters"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
			// Example: UPLOAD_PRIMARYURL -> upload.primaryUrl (not upload.primaryurl)
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills every tunable the config file left unset with its
// documented default so the pipeline can run from a near-empty file.
func (cfg *Config) applyDefaults() {
	if cfg.Scan == nil {
		cfg.Scan = &ScanConfig{}
	}
	if cfg.Scan.Interval <= 0 {
		cfg.Scan.Interval = DefaultScanInterval
	}

	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.Interval <= 0 {
		cfg.Upload.Interval = DefaultUploadInterval
	}
	if cfg.Upload.ConnectTimeout <= 0 {
		cfg.Upload.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Upload.RequestTimeout <= 0 {
		cfg.Upload.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Upload.MaxBackoff <= 0 {
		cfg.Upload.MaxBackoff = DefaultMaxBackoff
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.QueueLimit <= 0 {
		cfg.Cache.QueueLimit = DefaultQueueLimit
	}
	if cfg.Cache.SightingLimit <= 0 {
		cfg.Cache.SightingLimit = DefaultSightingLimit
	}
	if cfg.Cache.RetentionDays <= 0 {
		cfg.Cache.RetentionDays = DefaultRetentionDays
	}
	if cfg.Cache.UploadedTTL <= 0 {
		cfg.Cache.UploadedTTL = DefaultUploadedTTL
	}

	if cfg.Whitelist == nil {
		cfg.Whitelist = &WhitelistConfig{}
	}
	if cfg.Whitelist.SyncInterval <= 0 {
		cfg.Whitelist.SyncInterval = DefaultWhitelistInterval
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{Source: "static"}
	}
	if cfg.Location.Source == "" {
		cfg.Location.Source = "static"
	}
	if cfg.Location.ReuseDistanceMeters <= 0 {
		cfg.Location.ReuseDistanceMeters = DefaultReuseDistanceM
	}
	if cfg.Location.RequestTimeout <= 0 {
		cfg.Location.RequestTimeout = DefaultConnectTimeout
	}

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = "receiver.db"
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
