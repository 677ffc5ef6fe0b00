package view

import (
	"fmt"
	"html"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/SuperOrca/sbshards/internal/domain/entity"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/pkg/coins"
)

const timeLayout = "2006-01-02 15:04:05 MST"

var medals = [...]string{"🥇", "🥈", "🥉"} //nolint:gochecknoglobals

// Ranking renders the first limit rows of the displayed ranking.
func Ranking(state service.State, limit int) string {
	if !state.Calculated {
		return MessageNotCalculated
	}

	if len(state.Rows) == 0 {
		return service.MessageNoShards
	}

	var b strings.Builder

	b.WriteString(header(state))
	b.WriteString("\n\n")

	shown := min(limit, len(state.Rows))

	for i, row := range state.Rows[:shown] {
		b.WriteString(rankingRow(i, row, state.View))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nShowing %d of %d · updated %s", shown, len(state.Rows), state.LastUpdated.UTC().Format(timeLayout))

	return b.String()
}

func header(state service.State) string {
	title := "🛒 <b>Insta-buy cost</b>, cheapest first"
	if state.View == value.ViewBuyOrder {
		title = "💰 <b>Buy-order value</b>, most valuable first"
	}

	if state.Sort != nil {
		title += fmt.Sprintf(" (sorted by %s %s)", state.Sort.Column, state.Sort.Direction)
	}

	return title
}

func rankingRow(i int, row entity.CostResult, view value.View) string {
	marker := fmt.Sprintf("%d.", i+1)
	if i < len(medals) {
		marker = fmt.Sprintf("%s %d.", medals[i], i+1)
	}

	price, total := row.InstaBuyPrice, row.InstaBuyTotal
	if view == value.ViewBuyOrder {
		price, total = row.BuyOrderPrice, row.BuyOrderTotal
	}

	return fmt.Sprintf(
		"%s <b>%s</b> · %s ×%d\n      %s each · <b>%s</b> total",
		marker,
		html.EscapeString(row.Name),
		row.RarityLabel,
		row.RequiredCount,
		coins.Format(price),
		coins.Format(total),
	)
}

func Totals(state service.State) string {
	if !state.Calculated {
		return MessageNotCalculated
	}

	return fmt.Sprintf(
		"📊 <b>Totals</b>\n\n🛒 Insta-buy everything: <b>%s</b>\n💰 Buy-order value: <b>%s</b>",
		coins.Format(state.Totals.InstaBuy),
		coins.Format(state.Totals.BuyOrder),
	)
}

func Stats(state service.State) string {
	var b strings.Builder

	b.WriteString("📈 <b>Stats</b>\n\n")
	fmt.Fprintf(&b, "Shards in catalog: %d\n", state.Stats.TotalShards)
	fmt.Fprintf(&b, "Available: %d\n", state.Stats.Available)
	fmt.Fprintf(&b, "Ignored: %d\n", state.Stats.Ignored)
	fmt.Fprintf(&b, "Last calculated: %d\n", state.Stats.LastCalculated)

	for _, reason := range slices.Sorted(maps.Keys(state.Stats.Skipped)) {
		fmt.Fprintf(&b, "Skipped (%s): %d\n", reason, state.Stats.Skipped[reason])
	}

	updated := "never"
	if state.Calculated {
		updated = state.LastUpdated.UTC().Format(timeLayout)
	}

	fmt.Fprintf(&b, "Last updated: %s", updated)

	return b.String()
}

func Exclusions(names []string) string {
	if len(names) == 0 {
		return MessageNoExclusions
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🚫 <b>Ignored shards</b> (%d)\n", len(names))

	for _, name := range names {
		b.WriteString("\n• ")
		b.WriteString(html.EscapeString(name))
	}

	return b.String()
}

func Toggled(name string, excluded bool) string {
	if excluded {
		return fmt.Sprintf("🚫 <b>%s</b> is now ignored.", html.EscapeString(name))
	}
	return fmt.Sprintf("✅ <b>%s</b> is back in the rankings.", html.EscapeString(name))
}

// Refreshed is the short summary sent after a successful refresh.
func Refreshed(state service.State) string {
	return fmt.Sprintf(
		"✅ Prices updated: %d shards ranked.\n🛒 Insta-buy total: <b>%s</b>\n💰 Buy-order total: <b>%s</b>",
		state.Stats.LastCalculated,
		coins.Format(state.Totals.InstaBuy),
		coins.Format(state.Totals.BuyOrder),
	)
}

func Error(err error) string {
	return "❌ " + html.EscapeString(service.UserMessage(err))
}

func AutoRefresh(running bool, interval time.Duration) string {
	if running {
		return fmt.Sprintf("🟢 Periodic refresh is on, every %s.", interval)
	}
	return "🔴 Periodic refresh is off."
}
