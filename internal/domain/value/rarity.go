package value

import (
	"fmt"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

// Rarity is the tier encoded as the first character of a shard id.
type Rarity string

const (
	RarityCommon    Rarity = "C"
	RarityUncommon  Rarity = "U"
	RarityRare      Rarity = "R"
	RarityEpic      Rarity = "E"
	RarityLegendary Rarity = "L"
)

//nolint:gochecknoglobals
var (
	Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

	requiredCounts = map[Rarity]int{
		RarityCommon:    96,
		RarityUncommon:  64,
		RarityRare:      48,
		RarityEpic:      32,
		RarityLegendary: 24,
	}

	rarityLabels = map[Rarity]string{
		RarityCommon:    "Common",
		RarityUncommon:  "Uncommon",
		RarityRare:      "Rare",
		RarityEpic:      "Epic",
		RarityLegendary: "Legendary",
	}
)

// RarityFromID reads the tier from the first character of id. ok is false
// for an empty id or an unknown tier letter.
func RarityFromID(id string) (Rarity, bool) {
	if id == "" {
		return "", false
	}

	r := Rarity(id[:1])

	return r, r.Valid()
}

func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if !r.Valid() {
		return "", domain.NewError(errcodes.InvalidRarity, fmt.Sprintf("unknown rarity %q", s))
	}

	return r, nil
}

func (r Rarity) Valid() bool {
	_, ok := requiredCounts[r]
	return ok
}

// RequiredCount is the number of shards needed for the tier, 0 if unknown.
func (r Rarity) RequiredCount() int {
	return requiredCounts[r]
}

func (r Rarity) Label() string {
	return rarityLabels[r]
}

func (r Rarity) String() string {
	return string(r)
}
