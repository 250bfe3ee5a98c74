package advisor

import "strings"

// hinglishReplacer rewrites a handful of common romanized Hindi tokens into
// Devanagari so location lookup also sees the script the place descriptions
// use. This is a fixed approximation, not transliteration.
var hinglishReplacer = strings.NewReplacer(
	"kya", "क्या",
	"hai", "है",
	"kaise", "कैसे",
	"farming", "खेती",
	"crop", "फसल",
)

func normalizeHinglish(message string) string {
	return hinglishReplacer.Replace(message)
}
