package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/infrastructure/notifier"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

const testToken = "1234567890:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

type telegramAPI struct {
	mu     sync.Mutex
	bodies []string
	paths  []string
}

func (a *telegramAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	a.mu.Lock()
	a.bodies = append(a.bodies, string(body))
	a.paths = append(a.paths, r.URL.Path)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
}

func TestTelegramBot(t *testing.T) {
	rq := require.New(t)

	api := &telegramAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	bot, err := notifier.NewTelegramBot(testToken, 42, telego.WithAPIServer(srv.URL), telego.WithDiscardLogger())
	rq.NoError(err)

	ctx := context.Background()

	rq.NoError(bot.RefreshFailed(ctx, domain.NewError(errcodes.FeedRateLimited, "429")))
	rq.NoError(bot.RefreshRecovered(ctx, service.State{
		Totals: entity.Totals{InstaBuy: 1500, BuyOrder: 900},
		Stats:  service.Stats{LastCalculated: 3},
	}))

	rq.Len(api.bodies, 2)
	rq.Equal("/bot"+testToken+"/sendMessage", api.paths[0])
	rq.Contains(api.bodies[0], "Periodic refresh failed")
	rq.Contains(api.bodies[0], "Rate limited")
	rq.Contains(api.bodies[0], `"parse_mode":"HTML"`)
	rq.True(strings.Contains(api.bodies[1], "3 shards ranked"))
	rq.Contains(api.bodies[1], "1.5K")
}

func TestNewTelegramBotInvalidToken(t *testing.T) {
	_, err := notifier.NewTelegramBot("not-a-token", 42)
	require.Error(t, err)
}
