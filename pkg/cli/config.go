package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/haivivi/speechprint/pkg/fingerprint"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".speechprint"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("cli: profile not found")

// Config is the on-disk profile store.
type Config struct {
	// CurrentProfile is the name of the profile used when none is given
	CurrentProfile string `yaml:"current_profile,omitempty"`

	// Profiles maps profile name to its parameters
	Profiles map[string]*Profile `yaml:"profiles,omitempty"`

	configPath string
}

// Profile is a named set of extraction parameters. Profiles written by
// "speechprint profile add" carry fully populated configurations.
type Profile struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// SampleRate resamples input to this rate before extraction (0 keeps
	// the file's rate).
	SampleRate int `yaml:"sample_rate,omitempty" json:"sample_rate,omitempty"`

	BandEnergy *fingerprint.BandEnergyConfig `yaml:"fbe,omitempty" json:"fbe,omitempty"`
	Landmark   *fingerprint.LandmarkConfig   `yaml:"landmark,omitempty" json:"landmark,omitempty"`
}

// LoadConfig loads or creates ~/.speechprint/config.yaml.
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath("")
}

// LoadConfigWithPath loads configuration from a custom path. An empty path
// selects the default location. A missing file is created empty.
func LoadConfigWithPath(customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		paths, err := NewPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = paths.ConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{
		Profiles:   make(map[string]*Profile),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	cfg.configPath = configPath

	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// AddProfile adds or replaces a profile and saves the config.
func (c *Config) AddProfile(name string, p *Profile) error {
	if name == "" {
		return errors.New("cli: profile name is required")
	}
	p.Name = name
	c.Profiles[name] = p
	return c.Save()
}

// DeleteProfile removes a profile. Deleting the current profile clears it.
func (c *Config) DeleteProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return c.Save()
}

// UseProfile sets the current profile
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns a specific profile
func (c *Config) GetProfile(name string) (*Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// ResolveProfile returns the named profile, or the current profile if name
// is empty. It returns nil without error when name is empty and no current
// profile is set.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	if name == "" {
		if c.CurrentProfile == "" {
			return nil, nil
		}
		name = c.CurrentProfile
	}
	return c.GetProfile(name)
}

// ListProfiles returns all profile names in sorted order.
func (c *Config) ListProfiles() []string {
	return slices.Sorted(maps.Keys(c.Profiles))
}

// BandEnergyConfig returns the profile's band-energy parameters, or the
// defaults when p is nil or has none.
func (p *Profile) BandEnergyConfig() fingerprint.BandEnergyConfig {
	if p == nil || p.BandEnergy == nil {
		return fingerprint.DefaultBandEnergyConfig()
	}
	return *p.BandEnergy
}

// LandmarkConfig returns the profile's landmark parameters, or the defaults
// when p is nil or has none.
func (p *Profile) LandmarkConfig() fingerprint.LandmarkConfig {
	if p == nil || p.Landmark == nil {
		return fingerprint.DefaultLandmarkConfig()
	}
	return *p.Landmark
}
