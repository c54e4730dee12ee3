package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

// Config holds the settings of the preview tool and the editor defaults.
type Config struct {
	LogLevel    string
	Environment string
	Version     string
	Preview     PreviewConfig
	Editor      EditorConfig
}

// PreviewConfig controls the preview CLI.
type PreviewConfig struct {
	// DocumentPath is the document JSON file to compile.
	DocumentPath string
	// HTMLOutputPath receives the compiled HTML. "-" writes to stdout.
	HTMLOutputPath string
	// MJMLOutputPath optionally receives the intermediate MJML markup.
	MJMLOutputPath string
	// TemplateDataPath optionally points at a JSON file with Liquid
	// personalization data.
	TemplateDataPath string
}

// EditorConfig carries editor-wide defaults.
type EditorConfig struct {
	// DefaultDocumentName is used when an editor starts without a document.
	DefaultDocumentName string
}

// LoadOptions allows customizing how configuration is loaded.
type LoadOptions struct {
	EnvFile string
}

// Load loads the configuration with default options.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration from the environment, optionally
// seeded from an env file.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("PREVIEW_DOCUMENT", "")
	v.SetDefault("PREVIEW_HTML_OUTPUT", "-")
	v.SetDefault("PREVIEW_MJML_OUTPUT", "")
	v.SetDefault("PREVIEW_TEMPLATE_DATA", "")
	v.SetDefault("EDITOR_DEFAULT_DOCUMENT_NAME", "Untitled email")

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}
		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if the env file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		LogLevel:    v.GetString("LOG_LEVEL"),
		Environment: v.GetString("ENVIRONMENT"),
		Version:     v.GetString("VERSION"),
		Preview: PreviewConfig{
			DocumentPath:     v.GetString("PREVIEW_DOCUMENT"),
			HTMLOutputPath:   v.GetString("PREVIEW_HTML_OUTPUT"),
			MJMLOutputPath:   v.GetString("PREVIEW_MJML_OUTPUT"),
			TemplateDataPath: v.GetString("PREVIEW_TEMPLATE_DATA"),
		},
		Editor: EditorConfig{
			DefaultDocumentName: v.GetString("EDITOR_DEFAULT_DOCUMENT_NAME"),
		},
	}
	return cfg, nil
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
