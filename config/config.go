package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Storage     StorageConfig
	Parser      ParserConfig
	Import      ImportConfig
	Calendar    GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the directory holding the two persisted JSON
// documents (tasks and keywords).
type StorageConfig struct {
	DataDir string
}

// ParserConfig configures the free-text importer.
type ParserConfig struct {
	Timezone string // IANA name; empty means the system local zone
}

type ImportConfig struct {
	RateLimitPerMin int
}

// GoogleCalendarConfig enables optional calendar export when a
// credentials path is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.DataDir = viper.GetString("storage.data_dir")
	if dataDir := viper.GetString("data_dir"); dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Import.RateLimitPerMin = viper.GetInt("import.rate_limit_per_min")

	cfg.Calendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.Calendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Calendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("parser.timezone", "")
	viper.SetDefault("import.rate_limit_per_min", 60)
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
