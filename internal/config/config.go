package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding"

	"timetable-merge/internal/codepage"
	"timetable-merge/internal/validator"
)

// Config holds all run configuration. Command-line flags override it.
type Config struct {
	NSFile        string `env:"TTM_NS_FILE"`
	GridFile      string `env:"TTM_GRID_FILE"`
	DecisionsFile string `env:"TTM_DECISIONS_FILE" validate:"required"`
	// OutputFile defaults to the NS file name with ".merged" before the
	// extension.
	OutputFile string `env:"TTM_OUTPUT_FILE"`
	Encoding   string `env:"TTM_ENCODING" validate:"required"`
	ListenAddr string `env:"TTM_LISTEN_ADDR" validate:"required,hostname_port"`
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted.
	AllowedOrigins []string `env:"TTM_ALLOWED_ORIGINS" validate:"dive,url"`
	GinMode        string   `env:"GIN_MODE" validate:"oneof=debug release test"`
	LogLevel       string   `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat      string   `env:"LOG_FORMAT" validate:"oneof=json pretty"`
}

// Load reads configuration from environment variables with defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		NSFile:         getEnv("TTM_NS_FILE", ""),
		GridFile:       getEnv("TTM_GRID_FILE", ""),
		DecisionsFile:  getEnv("TTM_DECISIONS_FILE", "decisions.yaml"),
		OutputFile:     getEnv("TTM_OUTPUT_FILE", ""),
		Encoding:       getEnv("TTM_ENCODING", codepage.Default),
		ListenAddr:     getEnv("TTM_LISTEN_ADDR", "127.0.0.1:8080"),
		AllowedOrigins: parseOrigins(getEnv("TTM_ALLOWED_ORIGINS", "")),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Validate checks field formats and that the encoding is known.
func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return err
	}

	if _, err := c.TextEncoding(); err != nil {
		return err
	}

	return nil
}

// RequireInputs checks that both input documents are named.
func (c *Config) RequireInputs() error {
	var missing []string
	if c.NSFile == "" {
		missing = append(missing, "NS document (--ns or TTM_NS_FILE)")
	}
	if c.GridFile == "" {
		missing = append(missing, "grid document (--grid or TTM_GRID_FILE)")
	}

	if len(missing) > 0 {
		return errors.New("missing " + strings.Join(missing, " and "))
	}

	return nil
}

// TextEncoding resolves the configured encoding name.
func (c *Config) TextEncoding() (encoding.Encoding, error) {
	enc, err := codepage.Lookup(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("TTM_ENCODING: %w", err)
	}
	return enc, nil
}

// OutputPath returns where the merged document is written.
func (c *Config) OutputPath() string {
	if c.OutputFile != "" {
		return c.OutputFile
	}

	ext := filepath.Ext(c.NSFile)
	return strings.TrimSuffix(c.NSFile, ext) + ".merged" + ext
}
