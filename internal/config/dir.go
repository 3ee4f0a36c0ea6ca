// Package config locates and loads build-my-own's user configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "build-my-own"

// Dir returns the build-my-own configuration directory.
//
// Resolution:
//   - $BUILD_MY_OWN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/build-my-own if set (respects XDG on any platform)
//   - %AppData%/build-my-own on Windows
//   - ~/.config/build-my-own on macOS and Linux
func Dir() string {
	if dir := os.Getenv("BUILD_MY_OWN_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// Path returns the settings file location inside Dir, or "" when no
// configuration directory can be determined.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
