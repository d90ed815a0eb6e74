package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvPrefix = "LAUNCHTS"
	EnvConfig = "LAUNCHTS_CONFIG"
)

// DefaultPath returns <user config dir>/launchts/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, "launchts", "config.yaml"), nil
}

// Load reads the configuration. path comes from the --config flag; when it
// is empty $LAUNCHTS_CONFIG and then DefaultPath are tried. A missing file
// at the default location yields defaults; a missing file that was asked
// for explicitly is an error. Environment variables override the file.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	source := ""
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		switch err := v.ReadInConfig(); {
		case err == nil:
			source = v.ConfigFileUsed()
		case isNotExist(err):
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
		default:
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Versions == nil {
		cfg.Versions = map[string]string{}
	}
	cfg.Source = source

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("package_manager", d.PackageManager)
	v.SetDefault("fallback_version", d.FallbackVersion)
	v.SetDefault("reference_manifest", d.ReferenceManifest)
	v.SetDefault("install_retries", d.InstallRetries)
	v.SetDefault("commit_message", d.CommitMessage)
	v.SetDefault("versions", d.Versions)
	v.SetDefault("defaults.lint", d.Defaults.Lint)
	v.SetDefault("defaults.format", d.Defaults.Format)
	v.SetDefault("defaults.hooks", d.Defaults.Hooks)
	v.SetDefault("defaults.reload", d.Defaults.Reload)
	v.SetDefault("defaults.git", d.Defaults.Git)
	v.SetDefault("defaults.install", d.Defaults.Install)
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nf)
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
