package value

import "strings"

const RarityAll = "all"

// ListFilter narrows the shard management list. It never affects rankings.
type ListFilter struct {
	// Rarity is empty for all tiers.
	Rarity Rarity
	Query  string
}

func ParseListFilter(rarity, query string) (ListFilter, error) {
	f := ListFilter{Query: query}

	if rarity == "" || rarity == RarityAll {
		return f, nil
	}

	r, err := ParseRarity(rarity)
	if err != nil {
		return ListFilter{}, err
	}

	f.Rarity = r

	return f, nil
}

func (f ListFilter) Match(name, id string) bool {
	if !strings.Contains(strings.ToLower(name), strings.ToLower(f.Query)) {
		return false
	}

	if f.Rarity == "" {
		return true
	}

	return strings.HasPrefix(id, string(f.Rarity))
}

func (f ListFilter) RarityName() string {
	if f.Rarity == "" {
		return RarityAll
	}
	return string(f.Rarity)
}
