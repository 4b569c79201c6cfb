package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// DistrictPolicy decides what happens when a district is set without its
// parent city. Observed deployments disagree, so it is configuration rather
// than a constant.
type DistrictPolicy string

const (
	// DistrictRequireCity rejects a district without a city at validation.
	DistrictRequireCity DistrictPolicy = "require-city"
	// DistrictDefaultNotSpecified backfills an unset district with the
	// NotSpecified placeholder at submit time.
	DistrictDefaultNotSpecified DistrictPolicy = "default-not-specified"
)

// Config carries per-deployment form policy. The zero value is unusable;
// start from DefaultConfig.
type Config struct {
	DistrictPolicy DistrictPolicy `yaml:"district_policy"`
	NotSpecified   string         `yaml:"not_specified"`
	// Required and Optional override the key-derived required-field defaults.
	Required []string `yaml:"required"`
	Optional []string `yaml:"optional"`
	// DebounceMS is the suggestion quiet period in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
	// CacheTTLHours is the reference-list freshness window.
	CacheTTLHours int `yaml:"cache_ttl_hours"`
}

// DefaultConfig mirrors the observed product defaults.
func DefaultConfig() Config {
	return Config{
		DistrictPolicy: DistrictDefaultNotSpecified,
		NotSpecified:   "Не указан",
		DebounceMS:     300,
		CacheTTLHours:  24,
	}
}

// LoadConfig parses a YAML policy document over the defaults. Unknown keys
// are rejected so typos fail loudly.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("form: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFS reads and parses a policy document from a filesystem.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("form: read config %s: %w", path, err)
	}
	return LoadConfig(data)
}

func (c Config) validate() error {
	switch c.DistrictPolicy {
	case DistrictRequireCity, DistrictDefaultNotSpecified:
	default:
		return fmt.Errorf("form: unknown district policy %q", c.DistrictPolicy)
	}
	if c.DebounceMS < 0 {
		return errors.New("form: debounce_ms must not be negative")
	}
	if c.CacheTTLHours < 0 {
		return errors.New("form: cache_ttl_hours must not be negative")
	}
	return nil
}

// Debounce returns the configured quiet period.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// CacheTTL returns the configured reference-list freshness window.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.CacheTTLHours) * time.Hour
}
