package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config настройки сервера; источники — config.yaml, переменные окружения
// и значения по умолчанию
type Config struct {
	Address       string
	GinMode       string
	StagePrepare  time.Duration
	StageDeliver  time.Duration
	StageComplete time.Duration
}

// Load читает .env и config.yaml, если они есть; отсутствие файлов не ошибка
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("address", ":5000")
	viper.SetDefault("gin_mode", "release")
	viper.SetDefault("stages.preparing", "8s")
	viper.SetDefault("stages.out_for_delivery", "15s")
	viper.SetDefault("stages.delivered", "20s")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Address:       viper.GetString("address"),
		GinMode:       viper.GetString("gin_mode"),
		StagePrepare:  viper.GetDuration("stages.preparing"),
		StageDeliver:  viper.GetDuration("stages.out_for_delivery"),
		StageComplete: viper.GetDuration("stages.delivered"),
	}, nil
}
