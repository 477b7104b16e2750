package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, loaded from file or environment
type Config struct {
	Environment      string `mapstructure:"ENVIRONMENT"`
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	PostcodesBaseURL string `mapstructure:"POSTCODES_BASE_URL"`
	EnquiryEndpoint  string `mapstructure:"ENQUIRY_ENDPOINT"`
}

// LoadConfig reads configuration from the given directory, letting environment
// variables override file values
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("POSTCODES_BASE_URL", "https://api.postcodes.io")
	viper.SetDefault("ENQUIRY_ENDPOINT", "")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
