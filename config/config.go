package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. STUDY_STORAGE_DRIVER.
const EnvPrefix = "STUDY"

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Storage drivers.
const (
	DriverSnapshot = "snapshot"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `mapstructure:"name"`
	Environment Environment `mapstructure:"env"`
}

// StorageConfig selects where the program is persisted.
type StorageConfig struct {
	// Driver - "snapshot" (single binary file) or "sqlite".
	Driver string `mapstructure:"driver"`

	SnapshotPath string `mapstructure:"snapshot_path"`
	SQLitePath   string `mapstructure:"sqlite_path"`
}

// ExportConfig holds the output paths of the exporters.
type ExportConfig struct {
	CSVPath  string `mapstructure:"csv_path"`
	XLSXPath string `mapstructure:"xlsx_path"`

	// CSVDelimiter - single character, ";" by default.
	CSVDelimiter string `mapstructure:"csv_delimiter"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Load reads configuration with priority env > file > defaults. An empty
// path looks for config.yaml in ./config and the working directory; a
// missing file is not an error. A .env file is loaded when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "study-dashboard")
	v.SetDefault("app.env", string(EnvDevelopment))

	v.SetDefault("storage.driver", DriverSnapshot)
	v.SetDefault("storage.snapshot_path", "study_data.gob")
	v.SetDefault("storage.sqlite_path", "study_data.db")

	v.SetDefault("export.csv_path", "")
	v.SetDefault("export.xlsx_path", "")
	v.SetDefault("export.csv_delimiter", ";")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.Storage.Driver {
	case DriverSnapshot:
		if strings.TrimSpace(c.Storage.SnapshotPath) == "" {
			errs = append(errs, "storage.snapshot_path is required for the snapshot driver")
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			errs = append(errs, "storage.sqlite_path is required for the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("storage.driver must be %q or %q, got %q",
			DriverSnapshot, DriverSQLite, c.Storage.Driver))
	}

	if len([]rune(c.Export.CSVDelimiter)) != 1 {
		errs = append(errs, "export.csv_delimiter must be a single character")
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or console, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// DataPath returns the file the active storage driver writes to.
func (c *Config) DataPath() string {
	if c.Storage.Driver == DriverSQLite {
		return c.Storage.SQLitePath
	}
	return c.Storage.SnapshotPath
}

// CSVExportPath returns the CSV target. Without an explicit path it sits
// next to the data file with a .csv extension.
func (c *Config) CSVExportPath() string {
	if c.Export.CSVPath != "" {
		return c.Export.CSVPath
	}
	return replaceExt(c.DataPath(), ".csv")
}

// XLSXExportPath returns the workbook target, derived like CSVExportPath.
func (c *Config) XLSXExportPath() string {
	if c.Export.XLSXPath != "" {
		return c.Export.XLSXPath
	}
	return replaceExt(c.DataPath(), ".xlsx")
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.Export.CSVDelimiter {
		return r
	}
	return ';'
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
