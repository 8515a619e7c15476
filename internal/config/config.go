package config

import (
	"os"
	"strconv"
	"strings"

	"xlfilter/adapters/excel"
	"xlfilter/domain/filter"
	"xlfilter/internal/errors"

	"gopkg.in/yaml.v3"
)

// ColumnPlaceholder is replaced by the chosen column in FileNameTemplate
const ColumnPlaceholder = "{column}"

// Config represents the complete application configuration. It is built once
// at startup and passed by value; nothing in it changes afterwards.
type Config struct {
	Headers   filter.HeaderSet
	Detection filter.Detection
	Excel     excel.ExcelConfig
	Output    OutputConfig
	Server    ServerConfig
	Log       LogConfig
}

// OutputConfig holds result file naming settings
type OutputConfig struct {
	FileNameTemplate string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
	// MaxUploadBytes caps multipart uploads
	MaxUploadBytes int64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// fileConfig is the YAML shape of XLFILTER_CONFIG_FILE
type fileConfig struct {
	Headers   []string `yaml:"headers"`
	Detection struct {
		Mode       string `yaml:"mode"`
		MinMatches int    `yaml:"min_matches"`
	} `yaml:"detection"`
	Input struct {
		SheetName  string   `yaml:"sheet_name"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"input"`
	Output struct {
		FileNameTemplate string `yaml:"filename_template"`
		SheetName        string `yaml:"sheet_name"`
	} `yaml:"output"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Headers:   filter.DefaultHeaderSet(),
		Detection: filter.DefaultDetection(),
		Excel:     excel.DefaultExcelConfig(),
		Output: OutputConfig{
			FileNameTemplate: "Filter_column_" + ColumnPlaceholder + ".xlsx",
		},
		Server: ServerConfig{
			Port:           "8080",
			GinMode:        "release",
			MaxUploadBytes: 32 << 20,
		},
		Log: LogConfig{Level: "INFO"},
	}
}

// Load reads configuration from an optional YAML file and environment
// variables, then validates it
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("XLFILTER_CONFIG_FILE"); path != "" {
		if err := applyFile(&config, path); err != nil {
			return nil, errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	if err := applyEnv(&config); err != nil {
		return nil, errors.Wrap(err, "failed to load environment configuration")
	}

	if err := Validate(&config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return &config, nil
}

func applyFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read failed")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}

	if len(fc.Headers) > 0 {
		config.Headers = filter.NewHeaderSet(fc.Headers...)
	}
	if fc.Detection.Mode != "" {
		mode, err := filter.ParseDetectionMode(fc.Detection.Mode)
		if err != nil {
			return errors.WithCode(errors.CodeConfigInvalid, err)
		}
		config.Detection.Mode = mode
	}
	if fc.Detection.MinMatches != 0 {
		config.Detection.MinMatches = fc.Detection.MinMatches
	}
	if fc.Input.SheetName != "" {
		config.Excel.SheetName = fc.Input.SheetName
	}
	if len(fc.Input.Extensions) > 0 {
		config.Excel.Extensions = fc.Input.Extensions
	}
	if fc.Output.FileNameTemplate != "" {
		config.Output.FileNameTemplate = fc.Output.FileNameTemplate
	}
	if fc.Output.SheetName != "" {
		config.Excel.OutputSheetName = fc.Output.SheetName
	}
	return nil
}

func applyEnv(config *Config) error {
	if headers := os.Getenv("XLFILTER_HEADERS"); headers != "" {
		config.Headers = filter.NewHeaderSet(strings.Split(headers, ",")...)
	}
	if modeStr := os.Getenv("XLFILTER_DETECTION_MODE"); modeStr != "" {
		mode, err := filter.ParseDetectionMode(modeStr)
		if err != nil {
			return errors.WithCode(errors.CodeConfigInvalid, err)
		}
		config.Detection.Mode = mode
	}
	config.Detection.MinMatches = getEnvIntOrDefault("XLFILTER_MIN_MATCHES", config.Detection.MinMatches)
	config.Excel.SheetName = getEnvOrDefault("XLFILTER_SHEET_NAME", config.Excel.SheetName)
	config.Output.FileNameTemplate = getEnvOrDefault("XLFILTER_FILENAME_TEMPLATE", config.Output.FileNameTemplate)
	config.Server.Port = getEnvOrDefault("PORT", config.Server.Port)
	config.Server.GinMode = getEnvOrDefault("GIN_MODE", config.Server.GinMode)
	config.Server.MaxUploadBytes = getEnvInt64OrDefault("XLFILTER_MAX_UPLOAD_BYTES", config.Server.MaxUploadBytes)
	config.Log.Level = getEnvOrDefault("LOG_LEVEL", config.Log.Level)
	return nil
}

// Validate checks the settings the core relies on
func Validate(config *Config) error {
	if config.Headers.Len() == 0 {
		return errors.ConfigInvalid("header set is empty")
	}
	if config.Detection.MinMatches < 1 {
		return errors.ConfigInvalid("detection min matches must be at least 1")
	}
	if config.Detection.MinMatches > config.Headers.Len() && config.Detection.Mode == filter.DetectPerRow {
		return errors.ConfigInvalid("detection min matches exceeds the number of header labels")
	}
	if !strings.Contains(config.Output.FileNameTemplate, ColumnPlaceholder) {
		return errors.ConfigInvalid("file name template must contain " + ColumnPlaceholder)
	}
	if name := config.Excel.OutputSheetName; len([]rune(name)) > 31 {
		return errors.ConfigInvalid("output sheet name longer than 31 characters")
	}
	if config.Excel.OutputExtension == "" {
		return errors.ConfigInvalid("output extension is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
