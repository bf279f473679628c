package tgbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/goserg/vegasgolf/internal/config"
	"github.com/goserg/vegasgolf/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	log *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, see /help")

func New(rs *service.RoundService, cfg config.TgBot, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Debug

	return &Bot{
		bot:      bot,
		log:      log.WithField("name", "tg_bot"),
		commands: NewCommands(rs),
	}, nil
}

func (b *Bot) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.WithField("bot", b.bot.Self.UserName).Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	if !update.Message.IsCommand() {
		return
	}
	chatID := update.Message.Chat.ID
	log := b.log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(chatID, "")
	text, err := b.commands.RunCommand(ctx, chatID, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		log.WithError(err).Debug("command failed")
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}
