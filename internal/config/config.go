package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sainadh7/V-S-Sainadha-Krishna-C-C3-Project/internal/restaurant"
)

// Config holds all configuration for the application
// Values come from environment variables, optionally seeded from a .env file
type Config struct {
	Restaurant RestaurantConfig
	LogLevel   string
	LogFormat  string
}

type RestaurantConfig struct {
	Name        string
	Location    string
	OpeningTime restaurant.TimeOfDay
	ClosingTime restaurant.TimeOfDay
	Menu        []MenuEntry
}

// MenuEntry is one name:price pair from MENU
type MenuEntry struct {
	Name  string
	Price int
}

// Load reads configuration from environment variables.
// With no arguments a missing ./.env is ignored; named files must exist.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	opening, err := restaurant.ParseTimeOfDay(getEnv("OPENING_TIME", "10:30:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: OPENING_TIME: %w", err)
	}
	closing, err := restaurant.ParseTimeOfDay(getEnv("CLOSING_TIME", "22:00:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: CLOSING_TIME: %w", err)
	}
	menu, err := parseMenu(getEnv("MENU", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: MENU: %w", err)
	}

	cfg := &Config{
		Restaurant: RestaurantConfig{
			Name:        getEnv("RESTAURANT_NAME", "Amelie's cafe"),
			Location:    getEnv("RESTAURANT_LOCATION", "Chennai"),
			OpeningTime: opening,
			ClosingTime: closing,
			Menu:        menu,
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Restaurant.Name) == "" {
		return fmt.Errorf("RESTAURANT_NAME is required")
	}

	if !c.Restaurant.OpeningTime.Before(c.Restaurant.ClosingTime) {
		return fmt.Errorf("OPENING_TIME %s must be before CLOSING_TIME %s",
			c.Restaurant.OpeningTime, c.Restaurant.ClosingTime)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}

	return nil
}

// parseMenu reads "name:price,name:price". The price follows the last colon
// so item names may contain colons.
func parseMenu(raw string) ([]MenuEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var entries []MenuEntry
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sep := strings.LastIndex(part, ":")
		if sep <= 0 {
			return nil, fmt.Errorf("entry %q: expected name:price", part)
		}
		name := strings.TrimSpace(part[:sep])
		price, err := strconv.Atoi(strings.TrimSpace(part[sep+1:]))
		if err != nil || price < 0 {
			return nil, fmt.Errorf("entry %q: price must be a non-negative integer", part)
		}
		entries = append(entries, MenuEntry{Name: name, Price: price})
	}
	return entries, nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
