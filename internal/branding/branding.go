// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	Title       string `yaml:"title"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "create-nightwatch",
			DisplayName: "Nightwatch",
			Description: "Bootstrap a Nightwatch test-automation project",
			HomeDir:     ".create-nightwatch",
			EnvPrefix:   "CREATE_NIGHTWATCH",
			Title:       "\nNightwatch\n",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-nightwatch").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_NIGHTWATCH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Title returns the banner printed before the init workflow starts.
func Title() string { load(); return defaults.Title }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("mirror") → "CREATE_NIGHTWATCH_MIRROR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
