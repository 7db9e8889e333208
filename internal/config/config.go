// SPDX-License-Identifier: MIT

// Package config loads the demo's settings from .env files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/uwgraphics/MotionComparator-sub002/timeline"
)

// Config holds the warp settings.
type Config struct {
	Start        float64 `validate:"gte=0"`
	End          float64 `validate:"gtfield=Start"`
	MaxFrameRate float64 `validate:"gt=0,lte=240"`
	Window       int     `validate:"gte=-1"`
	LogLevel     string  `validate:"oneof=debug info warn error"`
	LogFormat    string  `validate:"oneof=json text"`
	MetricsFile  string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Start:        0,
		End:          10,
		MaxFrameRate: timeline.MaxFrameRate,
		Window:       -1,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads the given .env files (".env" when none are given) into the
// environment, then builds and validates a Config. A missing .env file is
// not an error; variables already set in the environment win.
func Load(paths ...string) (Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.Start, err = envFloat("WARP_START", cfg.Start); err != nil {
		return Config{}, err
	}
	if cfg.End, err = envFloat("WARP_END", cfg.End); err != nil {
		return Config{}, err
	}
	if cfg.MaxFrameRate, err = envFloat("WARP_MAX_FRAME_RATE", cfg.MaxFrameRate); err != nil {
		return Config{}, err
	}
	if cfg.Window, err = envInt("WARP_WINDOW", cfg.Window); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(GetEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(GetEnv("LOG_FORMAT", cfg.LogFormat))
	cfg.MetricsFile = GetEnv("WARP_METRICS_FILE", cfg.MetricsFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// GetEnv returns the value of key, or fallback if unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, s, err)
	}
	return v, nil
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: %w", key, s, err)
	}
	return v, nil
}
