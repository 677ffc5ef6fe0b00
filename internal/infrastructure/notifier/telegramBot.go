// Package notifier pushes refresh outcomes to a Telegram chat.
package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/transport/bot/view"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) RefreshFailed(ctx context.Context, err error) error {
	return b.SendHTML(ctx, "⚠️ Periodic refresh failed.\n"+view.Error(err))
}

func (b *TelegramBot) RefreshRecovered(ctx context.Context, state service.State) error {
	return b.SendHTML(ctx, view.Refreshed(state))
}

func (b *TelegramBot) SendHTML(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
