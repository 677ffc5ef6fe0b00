package entity

import "github.com/SuperOrca/sbshards/internal/domain/value"

// Shard is a catalog entry. Derived fields are computed on demand.
type Shard struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (s Shard) Rarity() (value.Rarity, bool) {
	return value.RarityFromID(s.ID)
}

func (s Shard) ProductKey() string {
	return value.ProductKey(s.Name)
}
