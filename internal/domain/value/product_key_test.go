package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain/value"
)

func TestProductKey(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		key   string
	}{
		{name: "Two words", input: "Fire Shard", key: "SHARD_FIRE_SHARD"},
		{name: "Whitespace run", input: "A   B", key: "SHARD_A_B"},
		{name: "Single word", input: "Grove", key: "SHARD_GROVE"},
		{name: "Tabs and newlines", input: "Bal\t\n Rana", key: "SHARD_BAL_RANA"},
		{name: "Non-breaking space", input: "Sea\u00a0Archer", key: "SHARD_SEA_ARCHER"},
		{name: "Ideographic space", input: "Star\u3000Sentry", key: "SHARD_STAR_SENTRY"},
		{name: "Leading and trailing", input: " Mist ", key: "SHARD__MIST_"},
		{name: "Mixed case", input: "kiwi shard", key: "SHARD_KIWI_SHARD"},
		{name: "Punctuation kept", input: "Bezal's Eye", key: "SHARD_BEZAL'S_EYE"},
		{name: "Full case mapping", input: "straße", key: "SHARD_STRASSE"},
		{name: "Empty", input: "", key: "SHARD_"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.key, value.ProductKey(tc.input))
		})
	}
}
