package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/vegasgolf/internal/cache/mem"
	"github.com/goserg/vegasgolf/internal/config"
	"github.com/goserg/vegasgolf/internal/logger"
	"github.com/goserg/vegasgolf/internal/service"
	"github.com/goserg/vegasgolf/internal/storage/sqlite"
	"github.com/goserg/vegasgolf/internal/tgbot"
	"github.com/goserg/vegasgolf/internal/web"
)

var (
	serverConfigPath string
	botConfigPath    string
)

func main() {
	flag.StringVar(&serverConfigPath, "server-config", config.DefaultServerConfigPath, "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", config.DefaultBotConfigPath, "path to bot configs")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.LogLevel)

	storage, err := sqlite.New(l, cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer storage.Close()

	roundService := service.New(storage, mem.New(), l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(roundService, cfg.TgBot, l)
		if err != nil {
			return err
		}
		go bot.Run(ctx)
		defer bot.Stop()
	}

	server, err := web.New(roundService, cfg.Server, l)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		l.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			l.WithError(err).Error("shutdown")
		}
	}()
	return server.Serve()
}
