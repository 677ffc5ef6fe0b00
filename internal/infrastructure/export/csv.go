// Package export renders cost rankings as CSV.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
)

const ContentType = "text/csv; charset=utf-8"

//nolint:gochecknoglobals
var header = []string{
	"Rank",
	"Shard Name",
	"Rarity",
	"Required Count",
	"Insta Buy Price",
	"Insta Buy Total",
	"Buy Order Price",
	"Buy Order Total",
}

// FileName is the download name for an export taken at t.
func FileName(t time.Time) string {
	return "shard_costs_" + t.UTC().Format(time.DateOnly) + ".csv"
}

// WriteCSV writes rows in the given order, ranked from 1. The name column
// is always quoted; amounts keep two decimals and are never abbreviated.
func WriteCSV(w io.Writer, rows []entity.CostResult) error {
	if len(rows) == 0 {
		return domain.ErrNoResults
	}

	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return fmt.Errorf("bw.WriteString: %w", err)
	}

	for i, row := range rows {
		record := []string{
			strconv.Itoa(i + 1),
			quote(row.Name),
			row.RarityLabel,
			strconv.Itoa(row.RequiredCount),
			amount(row.InstaBuyPrice),
			amount(row.InstaBuyTotal),
			amount(row.BuyOrderPrice),
			amount(row.BuyOrderTotal),
		}

		if _, err := bw.WriteString(strings.Join(record, ",") + "\n"); err != nil {
			return fmt.Errorf("bw.WriteString: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bw.Flush: %w", err)
	}

	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
