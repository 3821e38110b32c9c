package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

const (
	// DefaultMaxTurns is the turn ceiling used when no configuration sets one.
	DefaultMaxTurns = 1000
	// MaxTurnCeiling bounds configured turn ceilings.
	MaxTurnCeiling = 100000
)

// Config holds one solver profile loaded from JSON.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxTurns    int    `json:"max_turns"`
	LogTurns    bool   `json:"log_turns"`
}

// Validate checks a configuration for usability.
func Validate(c *Config) error {
	if c.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if c.MaxTurns < 1 || c.MaxTurns > MaxTurnCeiling {
		return fmt.Errorf("config validation: max_turns must be between 1 and %d, got %d", MaxTurnCeiling, c.MaxTurns)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name:        "default",
		Description: "Built-in default solver profile",
		MaxTurns:    DefaultMaxTurns,
	}
}

// Info summarizes an available configuration file.
type Info struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxTurns    int    `json:"max_turns"`
}

// Manager handles configuration loading and caching.
type Manager struct {
	configDir     string
	defaultConfig *Config
	configs       map[string]*Config
	mu            sync.RWMutex
}

// NewManager creates a configuration manager over the given directory.
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*Config),
	}
	m.loadDefaultConfig()
	return m, nil
}

// LoadConfig loads a configuration by name, caching the result.
func (m *Manager) LoadConfig(name string) (*Config, error) {
	m.mu.RLock()
	if config, exists := m.configs[name]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock.
	if config, exists := m.configs[name]; exists {
		return config, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	configPath := filepath.Join(m.configDir, filename)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.configs[name] = &config
	return &config, nil
}

// ListConfigs returns information about all available configurations.
func (m *Manager) ListConfigs() ([]*Info, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var infos []*Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		config, err := m.LoadConfig(name)
		if err != nil {
			// Skip invalid configs.
			continue
		}
		infos = append(infos, &Info{
			Filename:    entry.Name(),
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			MaxTurns:    config.MaxTurns,
		})
	}
	return infos, nil
}

// GetDefault returns the default configuration.
func (m *Manager) GetDefault() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name.
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// SaveConfig validates and writes a configuration to disk.
func (m *Manager) SaveConfig(name string, config *Config) error {
	if err := Validate(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	configPath := filepath.Join(m.configDir, filename)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[name] = config
	m.mu.Unlock()
	return nil
}

// loadDefaultConfig picks "default" from disk when present, falling back to
// the built-in profile.
func (m *Manager) loadDefaultConfig() {
	config, err := m.LoadConfig("default")
	if err != nil {
		config = Default()
	}
	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}
