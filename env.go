package main

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	settingsEnv  = "BLOCKTRIS_SETTINGS"
	debugLogEnv  = "BLOCKTRIS_DEBUG_LOG"
	settingsDir  = "blocktris"
	settingsFile = "settings.json"
)

// defaultSettingsPath can be set at link time with -ldflags "-X main.defaultSettingsPath=...".
var defaultSettingsPath string

// resolveSettingsPath picks the settings file: the flag value, then the
// environment, then the link-time default, then the user config dir.
func resolveSettingsPath(flagValue string) (string, error) {
	if path := strings.TrimSpace(flagValue); path != "" {
		return path, nil
	}
	if path := strings.TrimSpace(os.Getenv(settingsEnv)); path != "" {
		return path, nil
	}
	if defaultSettingsPath != "" {
		return defaultSettingsPath, nil
	}
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, settingsDir, settingsFile), nil
}

func debugLogPathFromEnv() string {
	return strings.TrimSpace(os.Getenv(debugLogEnv))
}
