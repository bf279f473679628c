package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultServerConfigPath = "configs/server.toml"
	DefaultBotConfigPath    = "configs/bot.toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
	Debug            bool   `toml:"debug"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	SqliteFile   string `toml:"sqlite_file"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
	LogLevel     string `toml:"log_level"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New(serverPath, botPath string) (Config, error) {
	serverCfg := Server{
		Host:       "0.0.0.0",
		Port:       3000,
		SqliteFile: "vegas.sqlite",
		LogLevel:   "info",
	}
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	if serverCfg.TgBotEnabled {
		_, err = toml.DecodeFile(botPath, &tgBotCfg)
		if err != nil {
			return Config{}, err
		}
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
