package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Configuration struct {
	LogConf   `mapstructure:"log"`
	OutputDir string `mapstructure:"outputDir"`
}

type LogConf struct {
	Level   string `mapstructure:"level"`
	Path    string `mapstructure:"path"`
	Console bool   `mapstructure:"console"`
}

var AppConfig Configuration

// Load reads the config file into AppConfig. A missing file is not an
// error when configFile is empty; defaults apply.
func Load(configFile string) error {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "./logs")
	v.SetDefault("log.console", true)
	v.SetDefault("outputDir", "")

	v.AutomaticEnv()
	v.SetEnvPrefix("MJLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}
