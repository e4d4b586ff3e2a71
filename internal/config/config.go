package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/neelchauhan/torlink/internal/branding"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyOutDir    = "out_dir"
	KeyPackage   = "package"
	KeyProfiles  = "profiles"
	KeyFormat    = "format"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Keys lists every supported key.
var Keys = []string{KeyOutDir, KeyPackage, KeyProfiles, KeyFormat, KeyLogLevel, KeyLogFormat}

// Options is the resolved configuration for one invocation.
type Options struct {
	OutDir    string
	Package   string
	Profiles  string
	Format    string
	LogLevel  string
	LogFormat string
}

// Config wraps a viper instance bound to the torlink keys.
type Config struct {
	v   *viper.Viper
	fs  afero.Fs
	dir string
}

// Dir returns the path to the config directory (~/.torlink/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// New returns a Config reading from dir on fsys. An empty dir selects Dir().
func New(fsys afero.Fs, dir string) *Config {
	if dir == "" {
		dir = Dir()
	}
	v := viper.New()
	v.SetFs(fsys)
	return &Config{v: v, fs: fsys, dir: dir}
}

// FilePath returns the full path to the config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.dir, fileName+"."+fileType)
}

// Load wires defaults, environment variables and the config file. A missing
// config file is not an error; a malformed one is.
func (c *Config) Load() error {
	c.v.SetConfigFile(c.FilePath())
	c.v.SetConfigType(fileType)
	c.v.SetEnvPrefix(branding.EnvPrefix())
	c.v.AutomaticEnv()

	c.v.SetDefault(KeyFormat, "cargo")
	c.v.SetDefault(KeyLogLevel, "warn")
	c.v.SetDefault(KeyLogFormat, "text")

	// cargo sets these for every build script.
	if err := c.v.BindEnv(KeyOutDir, branding.EnvVar(KeyOutDir), "OUT_DIR"); err != nil {
		return fmt.Errorf("binding %s: %w", KeyOutDir, err)
	}
	if err := c.v.BindEnv(KeyPackage, branding.EnvVar(KeyPackage), "CARGO_PKG_NAME"); err != nil {
		return fmt.Errorf("binding %s: %w", KeyPackage, err)
	}

	if err := c.v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", c.FilePath(), err)
	}
	return nil
}

// BindFlag makes an explicitly set flag override the key.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: no such flag", key)
	}
	return c.v.BindPFlag(key, flag)
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Options returns the resolved values for all keys.
func (c *Config) Options() Options {
	return Options{
		OutDir:    c.Get(KeyOutDir),
		Package:   c.Get(KeyPackage),
		Profiles:  c.Get(KeyProfiles),
		Format:    c.Get(KeyFormat),
		LogLevel:  c.Get(KeyLogLevel),
		LogFormat: c.Get(KeyLogFormat),
	}
}

// Set writes a single key to the config file, creating it if needed. Only
// keys already in the file and the one being set are persisted; values that
// came from the environment or flags are not.
func (c *Config) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := c.fs.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", c.dir, err)
	}

	file := viper.New()
	file.SetFs(c.fs)
	file.SetConfigFile(c.FilePath())
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", c.FilePath(), err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(c.FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	c.v.Set(key, value)
	return nil
}

func isKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
