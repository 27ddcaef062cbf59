package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// ToolConfig holds CLI defaults that can be overridden per invocation.
type ToolConfig struct {
	KeyBits int    `mapstructure:"key_bits"`
	KeyDir  string `mapstructure:"key_dir"`
}

// LoadToolConfig loads CLI configuration using Viper.
func LoadToolConfig() (*ToolConfig, error) {
	viper.SetConfigName("cryptkit-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.cryptkit")
	viper.AddConfigPath("/etc/cryptkit")

	// Set defaults
	viper.SetDefault("key_bits", 4096)
	viper.SetDefault("key_dir", ".")

	// Allow environment variables
	viper.SetEnvPrefix("CRYPTKIT")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config ToolConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
