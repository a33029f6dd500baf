package wlan

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Transport and sibling lister names accepted by Config.
const (
	TransportWext    = "wext"
	TransportNL80211 = "nl80211"
	SiblingsSysfs    = "sysfs"
	SiblingsNL80211  = "nl80211"
)

// Config selects how a Client reaches the driver.
type Config struct {
	// Transport is TransportWext (the default) or TransportNL80211.
	Transport string `yaml:"transport"`
	// Siblings is SiblingsSysfs (the default) or SiblingsNL80211, which
	// requires the nl80211 transport.
	Siblings string `yaml:"siblings"`
	// SysfsRoot is where sysfs is mounted, /sys by default.
	SysfsRoot string `yaml:"sysfs_root"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// LoadConfig reads a YAML Config from path. Missing fields take their
// defaults.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err = yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}
	cfg.setDefaults()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.Transport == "" {
		cfg.Transport = TransportWext
	}
	if cfg.Siblings == "" {
		cfg.Siblings = SiblingsSysfs
	}
	if cfg.SysfsRoot == "" {
		cfg.SysfsRoot = defaultSysfsRoot
	}
}

// Validate checks the transport and sibling lister names. Empty names are
// accepted and mean the defaults.
func (cfg *Config) Validate() error {
	switch cfg.Transport {
	case "", TransportWext, TransportNL80211:
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}

	switch cfg.Siblings {
	case "", SiblingsSysfs:
	case SiblingsNL80211:
		if cfg.Transport != TransportNL80211 {
			return fmt.Errorf("siblings %q requires transport %q", SiblingsNL80211, TransportNL80211)
		}
	default:
		return fmt.Errorf("unknown siblings lister %q", cfg.Siblings)
	}

	return nil
}

// NewLogger builds the development logger used by NewFromConfig, at info
// level unless cfg.Debug is set.
func (cfg *Config) NewLogger() (*zap.Logger, error) {
	logConfig := zap.NewDevelopmentConfig()
	if !cfg.Debug {
		logConfig.Level.SetLevel(zap.InfoLevel)
	}
	return logConfig.Build()
}

// NewFromConfig creates a Client as described by cfg.
func NewFromConfig(cfg Config) (*Client, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLogger(log),
		WithSysfsRoot(cfg.SysfsRoot),
	}

	if cfg.Transport == TransportNL80211 {
		t, err := newNL80211Transport()
		if err != nil {
			return nil, fmt.Errorf("error opening nl80211: %w", err)
		}
		opts = append(opts, WithTransport(t))

		if cfg.Siblings == SiblingsNL80211 {
			if s, ok := t.(SiblingLister); ok {
				opts = append(opts, WithSiblingLister(s))
			}
		}
	}

	return New(opts...), nil
}
