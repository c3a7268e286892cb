// Package config loads game settings from defaults, a .env file and
// EXTRACTION_* environment variables. Command line flags are applied on top
// by main.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Limits
const (
	MinLevel   = 1
	MaxLevels  = 99
	MinTick    = 1
	MaxTick    = 240
	envPrefix  = "EXTRACTION_"
	defaultEnv = ".env"
)

var (
	ErrInvalidRenderer = errors.New("invalid renderer")
	ErrInvalidLevel    = errors.New("invalid level")
	ErrInvalidVolume   = errors.New("invalid volume")
	ErrInvalidTickRate = errors.New("invalid tick rate")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidValue    = errors.New("invalid value")
)

// Config holds the game's settings.
type Config struct {
	Renderer   string  // Frontend: ebiten or tui
	MaxLevel   int     // Number of levels in a campaign
	StartLevel int     // Level a new campaign starts on
	Seed       int64   // Base maze seed, 0 picks one from the clock
	Volume     float64 // Master volume 0..1
	Muted      bool    // Start with sound muted
	TickRate   int     // Terminal frames per second
	LogLevel   string  // debug, info, warn or error
	LogFile    string  // Log destination, empty for the frontend default
	Language   string  // Locale for UI text
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Renderer:   RendererEbiten,
		MaxLevel:   10,
		StartLevel: 1,
		Volume:     0.3,
		TickRate:   30,
		LogLevel:   "info",
		Language:   "en",
	}
}

// Load reads envFile (".env" when empty) into the environment and builds a
// Config from the EXTRACTION_* variables over the defaults. A missing env
// file is not an error.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = defaultEnv
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
		log.Debug("env file not found", "path", envFile)
	}

	cfg := Default()
	var err error

	cfg.Renderer = strings.ToLower(getEnvWithDefault("RENDERER", cfg.Renderer))
	cfg.LogLevel = strings.ToLower(getEnvWithDefault("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFile = getEnvWithDefault("LOG_FILE", cfg.LogFile)
	cfg.Language = getEnvWithDefault("LANG", cfg.Language)

	if cfg.MaxLevel, err = getEnvAsInt("MAX_LEVEL", cfg.MaxLevel); err != nil {
		return Config{}, err
	}
	if cfg.StartLevel, err = getEnvAsInt("START_LEVEL", cfg.StartLevel); err != nil {
		return Config{}, err
	}
	if cfg.TickRate, err = getEnvAsInt("TICK_RATE", cfg.TickRate); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64("SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Volume, err = getEnvAsFloat("VOLUME", cfg.Volume); err != nil {
		return Config{}, err
	}
	if cfg.Muted, err = getEnvAsBool("MUTED", cfg.Muted); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field is in range
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidRenderer, c.Renderer, RendererEbiten, RendererTUI)
	}
	if c.MaxLevel < MinLevel || c.MaxLevel > MaxLevels {
		return fmt.Errorf("%w: max level %d outside %d..%d", ErrInvalidLevel, c.MaxLevel, MinLevel, MaxLevels)
	}
	if c.StartLevel < MinLevel || c.StartLevel > c.MaxLevel {
		return fmt.Errorf("%w: start level %d outside %d..%d", ErrInvalidLevel, c.StartLevel, MinLevel, c.MaxLevel)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: %.2f outside 0..1", ErrInvalidVolume, c.Volume)
	}
	if c.TickRate < MinTick || c.TickRate > MaxTick {
		return fmt.Errorf("%w: %d outside %d..%d", ErrInvalidTickRate, c.TickRate, MinTick, MaxTick)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the process-wide config
func Current() Config {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide config
func SetCurrent(c Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = c
}

// getEnvWithDefault retrieves EXTRACTION_<key> or returns defaultValue if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	v, err := getEnvAsInt64(key, int64(defaultValue))
	return int(v), err
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidValue, envPrefix, key, err)
	}
	return v, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s must be a number: %v", ErrInvalidValue, envPrefix, key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s%s must be a boolean: %v", ErrInvalidValue, envPrefix, key, err)
	}
	return v, nil
}
