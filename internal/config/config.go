package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig tunes the match runtime. Deck composition lives in the domain
// package; this covers the knobs operators change between deployments.
type GameConfig struct {
	PointTarget         int `json:"point_target"`
	KittySize           int `json:"kitty_size"`
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// Bot pacing: a bot waits a random number of seconds in this range before
	// acting, so play does not feel instantaneous.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding bots to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTurnDuration returns the configured turn timer in seconds.
func GetTurnDuration() int {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 30 // Safe default
	}
	return cfg.TurnDurationSeconds
}

// GetBotDelayRange returns the min and max seconds a bot waits before acting.
func GetBotDelayRange() (int, int) {
	if cfg == nil || cfg.BotMaxDelaySeconds <= 0 {
		return 1, 3
	}
	minDelay := cfg.BotMinDelaySeconds
	if minDelay < 0 {
		minDelay = 0
	}
	maxDelay := cfg.BotMaxDelaySeconds
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return minDelay, maxDelay
}

// GetPointTarget returns the attackers' point target.
func GetPointTarget() int {
	if cfg == nil || cfg.PointTarget <= 0 {
		return 80
	}
	return cfg.PointTarget
}
