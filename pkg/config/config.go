// Package config loads radwire settings from a file and RADWIRE_* environment
// variables.
package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vitalvas/radwire/pkg/log"
)

// Default RADIUS ports: authentication and accounting (current and legacy)
// and dynamic authorization.
var DefaultPorts = []int{1812, 1813, 1645, 1646, 3799}

// Config is the complete radwire configuration
type Config struct {
	Log        log.Config       `mapstructure:"log"`
	Listen     ListenConfig     `mapstructure:"listen"`
	Capture    CaptureConfig    `mapstructure:"capture"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// ListenConfig configures the passive UDP listener
type ListenConfig struct {
	Address    string `mapstructure:"address"`
	BufferSize int    `mapstructure:"buffer_size"`
}

// CaptureConfig configures offline capture decoding
type CaptureConfig struct {
	Ports []int `mapstructure:"ports"`
}

// DictionaryConfig lists additional dictionary files
type DictionaryConfig struct {
	Paths []string `mapstructure:"paths"`
	Dir   string   `mapstructure:"dir"`
}

// MetricsConfig configures the Prometheus endpoint. An empty address
// disables it.
type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: log.Config{
			Level:  "info",
			Format: "text",
		},
		Listen: ListenConfig{
			Address:    ":1812",
			BufferSize: 4096,
		},
		Capture: CaptureConfig{
			Ports: append([]int(nil), DefaultPorts...),
		},
	}
}

// Load reads the configuration file at path. An empty path loads only the
// defaults and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RADWIRE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		dir := filepath.Dir(path)
		filename := filepath.Base(path)
		fileExt := filepath.Ext(filename)

		v.SetConfigName(strings.TrimSuffix(filename, fileExt))
		v.SetConfigType(strings.TrimPrefix(fileExt, "."))
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so that environment variables can
// override values that do not appear in the file.
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.file.filename", "")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age", 28)
	v.SetDefault("log.file.compress", false)
	v.SetDefault("listen.address", def.Listen.Address)
	v.SetDefault("listen.buffer_size", def.Listen.BufferSize)
	v.SetDefault("capture.ports", def.Capture.Ports)
	v.SetDefault("dictionary.paths", []string{})
	v.SetDefault("dictionary.dir", "")
	v.SetDefault("metrics.address", "")
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported format %q", c.Log.Format)
	}

	if _, _, err := net.SplitHostPort(c.Listen.Address); err != nil {
		return fmt.Errorf("listen.address: %w", err)
	}

	if c.Listen.BufferSize < 20 || c.Listen.BufferSize > 65535 {
		return fmt.Errorf("listen.buffer_size: %d out of range 20-65535", c.Listen.BufferSize)
	}

	if len(c.Capture.Ports) == 0 {
		return fmt.Errorf("capture.ports: at least one port is required")
	}
	for _, port := range c.Capture.Ports {
		if port < 1 || port > 65535 {
			return fmt.Errorf("capture.ports: invalid port %d", port)
		}
	}

	if c.Metrics.Address != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Address); err != nil {
			return fmt.Errorf("metrics.address: %w", err)
		}
	}

	return nil
}
