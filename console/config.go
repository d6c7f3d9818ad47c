package console

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "."
	DefaultAddress = "127.0.0.1:50001"
)

type Config struct {
	Path      string `yaml:"path"`
	SavePath  string `yaml:"save_path"`
	Websocket bool   `yaml:"websocket"`
	Address   string `yaml:"address"`
	CertPath  string `yaml:"cert"`
	KeyPath   string `yaml:"key"`
	TUI       bool   `yaml:"tui"`
}

func DefaultConfig() *Config {
	return &Config{
		Path:    DefaultPath,
		Address: DefaultAddress,
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
