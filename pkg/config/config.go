package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/docker/docker/pkg/homedir"
)

var (
	initConfigDir = new(sync.Once)
	configDir     string
	homeDir       string
)

const (
	DefaultConfigFileName = "config.json"
	configFileDir         = ".archctl"
)

func GetHomeDir() string {
	if homeDir == "" {
		homeDir = homedir.Get()
	}
	return homeDir
}

func setConfigDir() {
	if configDir != "" {
		return
	}
	configDir = os.Getenv("ARCHCTL_CONFIG")
	if configDir == "" {
		configDir = filepath.Join(GetHomeDir(), configFileDir)
	}
}

// Dir returns the directory the configuration file is stored in
func Dir() string {
	initConfigDir.Do(setConfigDir)
	return configDir
}

func DefaultConfigFilePath() string {
	return filepath.Join(Dir(), DefaultConfigFileName)
}
