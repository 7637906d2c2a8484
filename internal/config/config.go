package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

const (
	envPrefix     = "FINTRACK_"
	envConfigFile = "FINTRACK_CONFIG"
)

type Config struct {
	DBPath    string
	PhotoDir  string
	ChartDir  string
	LogLevel  string
	LogFormat string
}

// Defaults keep all state under ./data in the working directory.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"db.path":    "./data/finance.db",
		"photo.dir":  "./data/photos",
		"chart.dir":  "./data/charts",
		"log.level":  "info",
		"log.format": "json",
	}
}

// ProcessEnvironmentVariables loads configuration from defaults, an optional
// YAML file and FINTRACK_* environment variables, in that order of
// precedence. The file is configPath, or FINTRACK_CONFIG when configPath is
// empty. A .env file in the working directory is loaded first when present.
func ProcessEnvironmentVariables(configPath string) (*Config, error) {
	_ = godotenv.Load()
	if configPath == "" {
		configPath = os.Getenv(envConfigFile)
	}
	return Load(configPath)
}

// Load builds a Config, reading configPath as YAML when it is non-empty.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// FINTRACK_DB_PATH -> db.path
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return &Config{
		DBPath:    k.String("db.path"),
		PhotoDir:  k.String("photo.dir"),
		ChartDir:  k.String("chart.dir"),
		LogLevel:  k.String("log.level"),
		LogFormat: k.String("log.format"),
	}, nil
}

// Validate returns every problem found in one error.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "db.path cannot be empty")
	}
	if strings.TrimSpace(c.PhotoDir) == "" {
		problems = append(problems, "photo.dir cannot be empty")
	}
	if strings.TrimSpace(c.ChartDir) == "" {
		problems = append(problems, "chart.dir cannot be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log.level '%s'", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		problems = append(problems, fmt.Sprintf("invalid log.format '%s': must be json or text", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
