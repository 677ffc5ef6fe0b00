// Package rest holds the JSON models of the HTTP API.
package rest

import "time"

type Shard struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Rarity     string `json:"rarity"`
	RarityName string `json:"rarityName"`
	Excluded   bool   `json:"excluded"`
}

type ShardFilter struct {
	Rarity string `json:"rarity"`
	Query  string `json:"query"`
}

type ShardList struct {
	Filter ShardFilter `json:"filter"`
	Shards []Shard     `json:"shards"`
}

type CostRow struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	ID            string  `json:"id"`
	Rarity        string  `json:"rarity"`
	RarityName    string  `json:"rarityName"`
	RequiredCount int     `json:"requiredCount"`
	InstaBuyPrice float64 `json:"instaBuyPrice"`
	InstaBuyTotal float64 `json:"instaBuyTotal"`
	BuyOrderPrice float64 `json:"buyOrderPrice"`
	BuyOrderTotal float64 `json:"buyOrderTotal"`
}

type Totals struct {
	InstaBuy          float64 `json:"instaBuy"`
	BuyOrder          float64 `json:"buyOrder"`
	InstaBuyFormatted string  `json:"instaBuyFormatted"`
	BuyOrderFormatted string  `json:"buyOrderFormatted"`
}

type Sort struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

type Stats struct {
	TotalShards    int            `json:"totalShards"`
	Available      int            `json:"available"`
	Ignored        int            `json:"ignored"`
	LastCalculated int            `json:"lastCalculated"`
	Skipped        map[string]int `json:"skipped"`
	LastUpdated    *time.Time     `json:"lastUpdated,omitempty"`
}

type Rankings struct {
	View        string     `json:"view"`
	Sort        *Sort      `json:"sort,omitempty"`
	Rows        []CostRow  `json:"rows"`
	Totals      Totals     `json:"totals"`
	Stats       Stats      `json:"stats"`
	Calculated  bool       `json:"calculated"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
	// Message is set when there is nothing to show.
	Message string `json:"message,omitempty"`
}

type SelectViewRequest struct {
	View string `json:"view" validate:"required,oneof=instaBuy buyOrder"`
}

// SortRequest toggles the column when Direction is empty.
type SortRequest struct {
	Column    string `json:"column" validate:"required"`
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

type ToggleExclusionRequest struct {
	Name string `json:"name" validate:"required"`
}

type ToggleExclusionResponse struct {
	Name     string   `json:"name"`
	Excluded bool     `json:"excluded"`
	Rankings Rankings `json:"rankings"`
}

type ExcludeFilteredRequest struct {
	Rarity string `json:"rarity"`
	Query  string `json:"query"`
}

type ExcludeFilteredResponse struct {
	Added    int      `json:"added"`
	Rankings Rankings `json:"rankings"`
}

type Exclusions struct {
	Names []string `json:"names"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}
