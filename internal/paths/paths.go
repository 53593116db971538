package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns $XDG_CONFIG_HOME/sift, falling back to ~/.config/sift.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sift")
	}
	return filepath.Join(home(), ".config", "sift")
}

// ConfigFile returns the YAML config path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// TOMLConfigFile returns the TOML config path.
func TOMLConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// FindConfig returns the first config file that exists, preferring YAML. When
// none exists it returns the YAML path.
func FindConfig() string {
	for _, p := range []string{ConfigFile(), filepath.Join(ConfigDir(), "config.yml"), TOMLConfigFile()} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ConfigFile()
}
