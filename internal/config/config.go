package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/nightwatch-labs/create-nightwatch/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys read by the init workflow.
const (
	KeyExclude   = "exclude"
	KeyOverwrite = "overwrite"
	KeyTemplates = "templates"
	KeyMirror    = "mirror"
	KeyProgress  = "progress"
)

// DefaultExclude lists the directory suffixes skipped when copying templates.
var DefaultExclude = []string{"node_modules", ".git"}

// Dir returns the path to the config directory (~/.create-nightwatch/).
func Dir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyExclude, DefaultExclude)
	viper.SetDefault(KeyOverwrite, false)
	viper.SetDefault(KeyProgress, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Bool returns a boolean config value.
func Bool(key string) bool {
	return viper.GetBool(key)
}

// Exclude returns the configured exclusion suffixes with blanks dropped.
// Values coming from the environment are comma-separated.
func Exclude() []string {
	var out []string
	for _, v := range viper.GetStringSlice(KeyExclude) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
