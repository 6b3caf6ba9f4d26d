package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SourceConfig describes one input source.
type SourceConfig struct {
	// Name identifies the source; defaults to the sheet or file name.
	Name string `mapstructure:"name"`

	// Path is the spreadsheet file to read.
	Path string `mapstructure:"path"`

	// Sheet names the worksheet within an xlsx workbook; empty means the
	// first sheet. Ignored for CSV files.
	Sheet string `mapstructure:"sheet"`

	// Status is the sheet-level default employment status, "Active" or
	// "Resigned/Terminated".
	Status string `mapstructure:"status"`
}

// OutputConfig holds the output destinations of a run.
type OutputConfig struct {
	Workbook   string `mapstructure:"workbook"`
	LatestCSV  string `mapstructure:"latest_csv"`
	HistoryCSV string `mapstructure:"history_csv"`
}

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool

	// Config file
	ConfigFile string

	// Consolidation configuration
	Sources     []SourceConfig `mapstructure:"sources"`
	Weights     map[string]int `mapstructure:"weights"`
	MappingFile string         `mapstructure:"mapping_file"`
	Output      OutputConfig   `mapstructure:"output"`

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags, environment variables, .env files, the config file,
// and defaults.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("STAFFMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".staffmap")
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		ConfigFile: v.ConfigFileUsed(),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "auto"),
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Output.Workbook == "" {
		config.Output.Workbook = "consolidated.xlsx"
	}

	return config, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns an environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
