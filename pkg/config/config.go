// Package config holds the settings for one mvnversions run.
//
// A zero-argument invocation uses [Default], which targets the
// com.github.javaparser group on mvnrepository.com. A config file can
// override any field; TOML and YAML are both accepted and selected by
// file extension:
//
//	namespace   = "org.apache.commons"
//	title       = "Apache Commons"
//	file_prefix = "commons"
//	delay       = "500ms"
//
// Fields left out of the file keep their default values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mvnversions/pkg/errors"
)

// Defaults used when no config file is given.
const (
	DefaultNamespace  = "com.github.javaparser"
	DefaultTitle      = "JavaParser"
	DefaultFilePrefix = "javaparser"
	DefaultBaseURL    = "https://mvnrepository.com"
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultDelay      = 300 * time.Millisecond
	DefaultTimeout    = 10 * time.Second
)

// Config is the full set of run settings.
type Config struct {
	Namespace  string        `toml:"namespace" yaml:"namespace"`     // Maven groupId to scan
	Title      string        `toml:"title" yaml:"title"`             // Display name used in headings
	FilePrefix string        `toml:"file_prefix" yaml:"file_prefix"` // Prefix for the four report files
	BaseURL    string        `toml:"base_url" yaml:"base_url"`       // Package index site root
	UserAgent  string        `toml:"user_agent" yaml:"user_agent"`   // Sent with every request
	Delay      time.Duration `toml:"delay" yaml:"delay"`             // Pause between version lookups
	Timeout    time.Duration `toml:"timeout" yaml:"timeout"`         // Per-request HTTP timeout
	OutputDir  string        `toml:"output_dir" yaml:"output_dir"`   // Where report files are written
}

// Default returns the configuration used for a plain invocation.
func Default() Config {
	return Config{
		Namespace:  DefaultNamespace,
		Title:      DefaultTitle,
		FilePrefix: DefaultFilePrefix,
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		Delay:      DefaultDelay,
		Timeout:    DefaultTimeout,
		OutputDir:  ".",
	}
}

// Load reads path over [Default] and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return errors.New(errors.ErrCodeInvalidConfig, "unknown key(s) %s in %s", strings.Join(keys, ", "), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	return nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if err := errors.ValidateGroupID(c.Namespace); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "namespace")
	}
	if err := errors.ValidateFilePrefix(c.FilePrefix); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "file_prefix")
	}
	if err := errors.ValidateURL(c.BaseURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "base_url")
	}
	if strings.TrimSpace(c.Title) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "title cannot be empty")
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "user_agent cannot be empty")
	}
	if c.Delay < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "delay cannot be negative (got %s)", c.Delay)
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout must be positive (got %s)", c.Timeout)
	}
	if c.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir cannot be empty")
	}
	return nil
}

// String summarizes the config for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("namespace=%s base_url=%s delay=%s output_dir=%s", c.Namespace, c.BaseURL, c.Delay, c.OutputDir)
}
