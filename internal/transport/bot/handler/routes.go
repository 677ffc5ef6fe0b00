package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/SuperOrca/sbshards/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	adminGroup.HandleMessage(h.OnRefresh, th.CommandEqual("refresh"))
	adminGroup.HandleMessage(h.OnTop, th.CommandEqual("top"))
	adminGroup.HandleMessage(h.OnSell, th.CommandEqual("sell"))
	adminGroup.HandleMessage(h.OnTotals, th.CommandEqual("totals"))
	adminGroup.HandleMessage(h.OnIgnore, th.CommandEqual("ignore"))
	adminGroup.HandleMessage(h.OnIgnored, th.CommandEqual("ignored"))
	adminGroup.HandleMessage(h.OnClearIgnored, th.CommandEqual("clearignored"))
	adminGroup.HandleMessage(h.OnResetPreferences, th.CommandEqual("resetprefs"))
	adminGroup.HandleMessage(h.OnStats, th.CommandEqual("stats"))
	adminGroup.HandleMessage(h.OnExport, th.CommandEqual("export"))
	adminGroup.HandleMessage(h.OnAutoRefresh, th.CommandEqual("autorefresh"))
}
