// Package view renders bot replies as Telegram HTML.
package view

const StartMessage = `💎 <b>Shard cost calculator</b>

Prices come from the Hypixel bazaar. Each shard needs a fixed count by rarity: Common 96, Uncommon 64, Rare 48, Epic 32, Legendary 24.

<b>Commands</b>
/refresh - fetch prices and recalculate
/top [n] - cheapest shards to insta-buy
/sell [n] - most valuable shards by buy order
/totals - combined cost of every shard
/ignore &lt;name&gt; - toggle a shard in or out of the rankings
/ignored - list ignored shards
/clearignored - forget every ignored shard
/resetprefs - delete the stored preferences
/stats - catalog and calculation stats
/export - current ranking as CSV
/autorefresh - toggle periodic refresh`

const (
	MessageNotCalculated = "No prices yet. Send /refresh to calculate."
	MessageNoExclusions  = "No shards are ignored."
	MessageCleared       = "🧹 Ignored list cleared."
	MessageReset         = "🧹 Preferences reset."
	MessageRefreshing    = "⏳ Fetching bazaar prices..."
	MessageIgnoreUsage   = "Usage: /ignore &lt;shard name&gt;"
	MessageLimitUsage    = "The count must be a number between 1 and 50."
	MessageAutoDisabled  = "Periodic refresh is disabled. Set REFRESH_INTERVAL to enable it."
)
