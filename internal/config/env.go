package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "EIGHTBALL_CONFIG"
	EnvAsset      = "EIGHTBALL_ASSET"
	EnvShowFPS    = "EIGHTBALL_SHOW_FPS"
	EnvSpinMode   = "EIGHTBALL_SPIN_MODE"
)

// PathFromEnv returns $EIGHTBALL_CONFIG or DefaultPath.
func PathFromEnv() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return DefaultPath
}

// FromEnv builds a sparse override from the environment, to be applied with Merge.
// Booleans can only switch features on.
func FromEnv() Config {
	var c Config
	c.Asset = strings.TrimSpace(os.Getenv(EnvAsset))
	c.Spin.Mode = strings.TrimSpace(os.Getenv(EnvSpinMode))
	if v, err := strconv.ParseBool(os.Getenv(EnvShowFPS)); err == nil && v {
		c.Debug.ShowFPS = true
	}
	return c
}
