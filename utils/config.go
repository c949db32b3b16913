package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	FrameRate time.Duration `json:"frame_rate"`
	MaxSteps  int           `json:"max_steps"` // 0 runs until interrupted
	UsePool   bool          `json:"use_memory_pool"`
	LogFile   string        `json:"log_file"`
	Debug     bool          `json:"debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate: 500 * time.Millisecond,
		MaxSteps:  0,
		UsePool:   true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate rejects settings the game loop cannot run with
func (c Config) Validate() error {
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxSteps < 0 {
		return errors.Errorf("[Validate] max steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}
