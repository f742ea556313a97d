package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage         string
	LogLevel      string
	LogsDir       string
	PlayerOneName string
	PlayerTwoName string
}

// Load resolves configuration from the environment. Outside production a
// .env file in envDir is loaded first when present.
func Load(envDir string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(filepath.Join(envDir, ".env")); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("error loading env file: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault("STAGE", StageDev)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOGS_DIR", "./logs")
	v.SetDefault("PLAYER_ONE_NAME", "Player 1")
	v.SetDefault("PLAYER_TWO_NAME", "Player 2")
	v.AutomaticEnv()

	cfg := Config{
		Stage:         v.GetString("STAGE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogsDir:       v.GetString("LOGS_DIR"),
		PlayerOneName: v.GetString("PLAYER_ONE_NAME"),
		PlayerTwoName: v.GetString("PLAYER_TWO_NAME"),
	}

	if cfg.Stage != StageProd && cfg.Stage != StageDev {
		return Config{}, fmt.Errorf("invalid type of development stage: %s", cfg.Stage)
	}
	if cfg.PlayerOneName == cfg.PlayerTwoName {
		return Config{}, fmt.Errorf("player names must differ: %s", cfg.PlayerOneName)
	}

	return cfg, nil
}
