package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	JWTSecret  string `mapstructure:"jwt_secret"`
	ServerPort string `mapstructure:"server_port"`
	Env        string `mapstructure:"env"`
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// Load reads configuration from environment variables with sane local
// defaults. A .env file, if present, is loaded by the caller before this
// runs.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "quizapp")
	v.SetDefault("jwt_secret", "super-secret-key-change-me")
	v.SetDefault("server_port", "8080")
	v.SetDefault("env", "local")

	v.AutomaticEnv()

	_ = v.BindEnv("db_host", "DB_HOST")
	_ = v.BindEnv("db_port", "DB_PORT")
	_ = v.BindEnv("db_user", "DB_USER")
	_ = v.BindEnv("db_password", "DB_PASSWORD")
	_ = v.BindEnv("db_name", "DB_NAME")
	_ = v.BindEnv("jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("server_port", "SERVER_PORT")
	_ = v.BindEnv("env", "APP_ENV")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}
