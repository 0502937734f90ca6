package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ValidateGameConfig validates a puzzle preset
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if err := ValidateDiskCount(config.NumDisks); err != nil {
		return fmt.Errorf("config validation: num_disks: %w", err)
	}

	// Zero means "use the default interval"
	if config.AutoplayIntervalMs != 0 &&
		(config.AutoplayIntervalMs < MinAutoplayIntervalMs || config.AutoplayIntervalMs > MaxAutoplayIntervalMs) {
		return fmt.Errorf("config validation: autoplay_interval_ms must be between %d and %d, got %d",
			MinAutoplayIntervalMs, MaxAutoplayIntervalMs, config.AutoplayIntervalMs)
	}

	if err := ValidateMoveStatus(config.Messages.MoveStatus); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	return nil
}

// ValidateMoveStatus checks that a status template takes exactly the
// position and total as its two %d verbs. An empty template is allowed.
func ValidateMoveStatus(tmpl string) error {
	if tmpl == "" {
		return nil
	}
	if strings.Count(strings.ReplaceAll(tmpl, "%%", ""), "%d") != 2 {
		return fmt.Errorf("messages.move_status must contain %%d twice for position and total, got %q", tmpl)
	}
	if sample := fmt.Sprintf(tmpl, 1, 2); strings.Contains(sample, "%!") {
		return fmt.Errorf("messages.move_status has verbs other than two %%d, got %q", tmpl)
	}
	return nil
}

// LoadGameConfig loads a puzzle preset from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the built-in preset with n disks
func DefaultConfig(n int) *GameConfig {
	config := &GameConfig{
		Name:               "default",
		Description:        fmt.Sprintf("Move %d disks from rod A to rod C", n),
		NumDisks:           n,
		AutoplayIntervalMs: DefaultAutoplayIntervalMs,
	}
	config.Messages.Welcome = "Move all disks from rod A to rod C."
	config.Messages.MoveStatus = "Move %d of %d"
	config.Messages.Complete = "Done"
	config.Messages.AtStart = "At start"
	return config
}

// withDefaults returns a copy of config with empty messages and interval filled in
func withDefaults(config *GameConfig) *GameConfig {
	c := *config
	d := DefaultConfig(c.NumDisks)
	if c.AutoplayIntervalMs == 0 {
		c.AutoplayIntervalMs = d.AutoplayIntervalMs
	}
	if c.Messages.Welcome == "" {
		c.Messages.Welcome = d.Messages.Welcome
	}
	if c.Messages.MoveStatus == "" {
		c.Messages.MoveStatus = d.Messages.MoveStatus
	}
	if c.Messages.Complete == "" {
		c.Messages.Complete = d.Messages.Complete
	}
	if c.Messages.AtStart == "" {
		c.Messages.AtStart = d.Messages.AtStart
	}
	return &c
}
