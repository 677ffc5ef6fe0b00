package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/internal/infrastructure/export"
)

func TestWriteCSV(t *testing.T) {
	rq := require.New(t)

	rows := []entity.CostResult{
		{
			Name:          "Fire Shard",
			RarityLabel:   "Common",
			RequiredCount: 96,
			InstaBuyPrice: 10,
			InstaBuyTotal: 960,
		},
		{
			Name:          `Mist, the "Grey"`,
			RarityLabel:   "Legendary",
			RequiredCount: 24,
			InstaBuyPrice: 1234567.891,
			InstaBuyTotal: 29629629.384,
			BuyOrderPrice: 1000.5,
			BuyOrderTotal: 24012,
		},
	}

	var buf bytes.Buffer

	rq.NoError(export.WriteCSV(&buf, rows))

	want := "Rank,Shard Name,Rarity,Required Count,Insta Buy Price,Insta Buy Total,Buy Order Price,Buy Order Total\n" +
		`1,"Fire Shard",Common,96,10.00,960.00,0.00,0.00` + "\n" +
		`2,"Mist, the ""Grey""",Legendary,24,1234567.89,29629629.38,1000.50,24012.00` + "\n"

	rq.Equal(want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	err := export.WriteCSV(&buf, nil)
	rq.ErrorIs(err, domain.ErrNoResults)
	rq.Zero(buf.Len())
}

func TestFileName(t *testing.T) {
	rq := require.New(t)

	rq.Equal(
		"shard_costs_2026-10-18.csv",
		export.FileName(time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)),
	)
}
