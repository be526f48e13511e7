package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "EARMOUSE"

type Config struct {
	Logger LoggerConfig
	Tools  ToolsConfig
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// ToolsConfig holds the settings shared by the module and list builders.
type ToolsConfig struct {
	WorkDir              string `yaml:"work_dir"`
	ListFile             string `yaml:"list_file"`
	ModulePrefix         string `yaml:"module_prefix"`
	DefaultLowestNote    int    `yaml:"default_lowest_note"`
	DefaultHighestNote   int    `yaml:"default_highest_note"`
	DefaultModuleVersion int    `yaml:"default_module_version"`
	BuilderVersion       string `yaml:"builder_version"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("tools.work_dir", ".")
	v.SetDefault("tools.list_file", "list.json")
	v.SetDefault("tools.module_prefix", "module_")
	// 0 is C2 and 41 is E5 on the app's keyboard
	v.SetDefault("tools.default_lowest_note", 0)
	v.SetDefault("tools.default_highest_note", 41)
	v.SetDefault("tools.default_module_version", 1)
	v.SetDefault("tools.builder_version", "0.3")
}

// LoadConfig reads an optional config.yaml from the working directory or
// ./configs. Every key can be overridden with an EARMOUSE_ prefixed env var,
// e.g. EARMOUSE_TOOLS_LIST_FILE.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Tools: ToolsConfig{
			WorkDir:              v.GetString("tools.work_dir"),
			ListFile:             v.GetString("tools.list_file"),
			ModulePrefix:         v.GetString("tools.module_prefix"),
			DefaultLowestNote:    v.GetInt("tools.default_lowest_note"),
			DefaultHighestNote:   v.GetInt("tools.default_highest_note"),
			DefaultModuleVersion: v.GetInt("tools.default_module_version"),
			BuilderVersion:       v.GetString("tools.builder_version"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the file store cannot work with.
func (c *Config) Validate() error {
	if c.Tools.WorkDir == "" {
		return errors.New("tools.work_dir must not be empty")
	}
	if c.Tools.ModulePrefix == "" {
		return errors.New("tools.module_prefix must not be empty")
	}
	if c.Tools.ListFile == "" || filepath.Base(c.Tools.ListFile) != c.Tools.ListFile {
		return fmt.Errorf("tools.list_file must be a plain file name, got %q", c.Tools.ListFile)
	}
	return nil
}
