package handler

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/internal/infrastructure/export"
	"github.com/SuperOrca/sbshards/internal/transport/bot/view"
	"github.com/SuperOrca/sbshards/internal/worker"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	if err := h.sendHTML(ctx, msg.Chat.ID, view.MessageRefreshing); err != nil {
		return err
	}

	state, err := h.session.Refresh(ctx)
	if err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Refreshed(state))
}

func (h *Handler) OnTop(ctx *th.Context, msg telego.Message) error {
	return h.sendRanking(ctx, msg, value.ViewInstaBuy)
}

func (h *Handler) OnSell(ctx *th.Context, msg telego.Message) error {
	return h.sendRanking(ctx, msg, value.ViewBuyOrder)
}

func (h *Handler) sendRanking(ctx *th.Context, msg telego.Message, v value.View) error {
	limit, ok := parseLimit(commandArgs(msg.Text))
	if !ok {
		return h.sendHTML(ctx, msg.Chat.ID, view.MessageLimitUsage)
	}

	state := h.session.SelectView(v)

	return h.sendHTML(ctx, msg.Chat.ID, view.Ranking(state, limit))
}

func (h *Handler) OnTotals(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Totals(h.session.State()))
}

func (h *Handler) OnIgnore(ctx *th.Context, msg telego.Message) error {
	name := commandArgs(msg.Text)
	if name == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.MessageIgnoreUsage)
	}

	excluded, _, err := h.session.ToggleExclusion(ctx, name)
	if err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Toggled(name, excluded))
}

func (h *Handler) OnIgnored(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Exclusions(h.session.Exclusions()))
}

func (h *Handler) OnClearIgnored(ctx *th.Context, msg telego.Message) error {
	if _, err := h.session.ClearExclusions(ctx); err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.MessageCleared)
}

func (h *Handler) OnResetPreferences(ctx *th.Context, msg telego.Message) error {
	if _, err := h.session.ResetPreferences(ctx); err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.MessageReset)
}

func (h *Handler) OnStats(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Stats(h.session.State()))
}

func (h *Handler) OnExport(ctx *th.Context, msg telego.Message) error {
	var buf bytes.Buffer

	if err := export.WriteCSV(&buf, h.session.State().Rows); err != nil {
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	document := tu.Document(
		tu.ID(msg.Chat.ID),
		tu.File(tu.NameReader(&buf, export.FileName(h.now()))),
	)

	if _, err := ctx.Bot().SendDocument(ctx, document); err != nil {
		return fmt.Errorf("bot.SendDocument: %w", err)
	}

	return nil
}

func (h *Handler) OnAutoRefresh(ctx *th.Context, msg telego.Message) error {
	if h.refresher.IsRunning() {
		h.refresher.Stop()
		return h.sendHTML(ctx, msg.Chat.ID, view.AutoRefresh(false, 0))
	}

	if err := h.refresher.Start(h.base); err != nil {
		if errors.Is(err, worker.ErrDisabled) {
			return h.sendHTML(ctx, msg.Chat.ID, view.MessageAutoDisabled)
		}
		return h.sendError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.AutoRefresh(true, h.refresher.Interval()))
}

func (h *Handler) sendError(ctx *th.Context, chatID int64, err error) error {
	logger(ctx).Warn("bot command failed", logx.Error(err))

	return h.sendHTML(ctx, chatID, view.Error(err))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
