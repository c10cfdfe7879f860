package main

import "github.com/spf13/viper"

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	DB struct {
		DSN string `mapstructure:"DB_DSN"`
	} `mapstructure:",squash"`

	JWT struct {
		Secret string `mapstructure:"JWT_SECRET"`
	} `mapstructure:",squash"`

	Limiter struct {
		Enabled bool    `mapstructure:"LIMITER_ENABLED"`
		RPS     float64 `mapstructure:"LIMITER_RPS"`
		Burst   int     `mapstructure:"LIMITER_BURST"`
	} `mapstructure:",squash"`
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")

	viper.SetDefault("PORT", ":4000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LIMITER_ENABLED", true)
	viper.SetDefault("LIMITER_RPS", 25)
	viper.SetDefault("LIMITER_BURST", 50)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
