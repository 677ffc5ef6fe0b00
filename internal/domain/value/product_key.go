package value

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const productKeyPrefix = "SHARD_"

// Same set as the ECMAScript \s class: ASCII whitespace, vertical tab,
// Unicode space separators, line/paragraph separators and the BOM.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`) //nolint:gochecknoglobals

// ProductKey derives the bazaar product id for a shard name.
func ProductKey(name string) string {
	// cases.Caser is stateful, so one per call.
	upper := cases.Upper(language.Und)

	return productKeyPrefix + upper.String(whitespaceRun.ReplaceAllString(name, "_"))
}
