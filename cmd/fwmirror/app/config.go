package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fwmirror/fwmirror/internal/index"
	"github.com/fwmirror/fwmirror/pkg/firmware"
)

// Default paths for the mirror checkout this tool runs inside.
const (
	DefaultManifestDir = "firmware_updates"
	DefaultReadmePath  = "README.md"
)

// Config holds the application configuration loaded from various
// sources including config files, environment variables, and .env
// files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Mirror configuration
	ManifestDir   string
	ReadmePath    string
	Device        string
	RepositoryURL string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of
// precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables
//  3. .env files
//  4. Config file (~/.fwmirror.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FWMIRROR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".fwmirror")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Mirror configuration
		ManifestDir:   viper.GetString("manifest_dir"),
		ReadmePath:    viper.GetString("readme_path"),
		Device:        viper.GetString("device"),
		RepositoryURL: viper.GetString("repository_url"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if config.ManifestDir == "" {
		config.ManifestDir = DefaultManifestDir
	}
	if config.ReadmePath == "" {
		config.ReadmePath = DefaultReadmePath
	}
	if config.Device == "" {
		config.Device = firmware.DefaultDevice
	}
	if config.RepositoryURL == "" {
		config.RepositoryURL = index.DefaultRepositoryURL
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the
// default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
