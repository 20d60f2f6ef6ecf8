package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional settings file schema.
type FileConfig struct {
	Verbose  *bool    `yaml:"verbose" json:"verbose"`
	EnvFiles []string `yaml:"envFiles" json:"envFiles"`

	Exit struct {
		OnError *int `yaml:"onError" json:"onError"`
	} `yaml:"exit" json:"exit"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Files without a known
// extension are tried as YAML, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays the fields set in fc onto cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if len(fc.EnvFiles) > 0 {
		cfg.EnvFiles = append([]string(nil), fc.EnvFiles...)
	}
	if fc.Exit.OnError != nil {
		cfg.ExitCodeOnError = *fc.Exit.OnError
	}
}

// ValidateConfig rejects settings the process cannot honour.
func ValidateConfig(cfg Config) error {
	// 126 and above are reserved by shells.
	if cfg.ExitCodeOnError < 0 || cfg.ExitCodeOnError > 125 {
		return fmt.Errorf("config: exit.onError must be between 0 and 125, got %d", cfg.ExitCodeOnError)
	}
	return nil
}

// LoadSettings builds the runtime Config: defaults, then the settings file
// named by MINIGREP_CONFIG, then the dotenv files, then environment
// overrides.
func LoadSettings() (Config, error) {
	cfg := DefaultConfig()
	if p := os.Getenv(envConfigPath); p != "" {
		fc, err := LoadConfigFile(p)
		if err != nil {
			return cfg, fmt.Errorf("load %s: %w", p, err)
		}
		ApplyFileConfig(&cfg, fc)
	}
	if err := LoadEnvFiles(cfg.EnvFiles...); err != nil {
		return cfg, fmt.Errorf("load env files: %w", err)
	}
	ApplyEnvOverrides(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
