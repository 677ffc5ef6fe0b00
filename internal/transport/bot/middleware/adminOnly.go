package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// AdminOnly drops updates from anyone but adminID. Accepted updates carry
// the user id and a logger tagged with it.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		var userID int64

		switch {
		case update.Message != nil && update.Message.From != nil:
			userID = update.Message.From.ID
		case update.CallbackQuery != nil:
			userID = update.CallbackQuery.From.ID
		default:
			return nil
		}

		if userID != adminID {
			logger(ctx).Warn("update from unknown user dropped", slog.Int64(logx.FieldUserID, userID))
			return nil
		}

		log := logger(ctx).With(slog.Int64(logx.FieldUserID, userID))

		return ctx.
			WithValue(contextx.UserIDKey(), contextx.UserID(userID)).
			WithValue(contextx.LoggerKey(), log).
			Next(update)
	}
}
