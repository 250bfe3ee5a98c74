// Package advisor selects canned advisory responses for free-text farmer
// questions. Selection is an ordered keyword-rule cascade over the
// lowercased input: schemes, insurance, location, soil, crops, then the
// default help text. First match wins; every input resolves to some
// response, so there is no error path.
//
// Trigger tokens mix all supported languages at once. A Punjabi user typing
// the English word "soil" still hits the soil rule; the response text is
// always rendered in the active chat language.
package advisor

import (
	"strings"

	"github.com/Advik20-coder/agri-mitra-samarth/locale"
)

// Topic labels, used for metrics and tests.
const (
	TopicScheme    = "scheme"
	TopicInsurance = "insurance"
	TopicLocation  = "location"
	TopicSoil      = "soil"
	TopicCrops     = "crops"
	TopicDefault   = "default"
)

var (
	schemeTriggers = []string{
		"yojna", "yojana", "scheme", "govt", "subsidy",
		"सरकारी", "योजना", "सब्सिडी",
		"ਯੋਜਨਾ", "ਸਰਕਾਰੀ", "ਸਬਸਿਡੀ",
	}
	punjabTriggers = []string{"punjab", "पंजाब", "ਪੰਜਾਬ"}
	biharTriggers  = []string{"bihar", "बिहार", "ਬਿਹਾਰ"}

	insuranceTriggers = []string{"insurance", "bima", "pmfby", "बीमा", "ਬੀਮਾ"}

	soilTriggers = []string{"मिट्टी", "soil", "mitti", "ਮਿੱਟੀ"}
	cropTriggers = []string{"फसल", "crop", "खेती", "ਫਸਲ", "ਖੇਤੀ"}
)

// Advisor holds the place table. Everything else is fixed literals, so an
// Advisor with the built-in table is a pure function of its inputs.
type Advisor struct {
	regions []Region
}

// New returns an Advisor with the built-in place table.
func New() *Advisor {
	return &Advisor{regions: regions}
}

// Respond returns the response text for input in lang. It is pure: no state
// is read or written, identical arguments give byte-identical output.
func (a *Advisor) Respond(input, lang string) string {
	text, _ := a.Reply(input, lang)
	return text
}

// Reply is Respond plus the matched topic label.
func (a *Advisor) Reply(input, lang string) (string, string) {
	if !locale.Known(lang) {
		lang = locale.DefaultLanguage
	}
	message := strings.ToLower(input)

	if containsAny(message, schemeTriggers) {
		switch {
		case containsAny(message, punjabTriggers):
			return schemePunjabText[lang], TopicScheme
		case containsAny(message, biharTriggers):
			return schemeBiharText[lang], TopicScheme
		default:
			return schemeGeneralText[lang], TopicScheme
		}
	}

	if containsAny(message, insuranceTriggers) {
		return insuranceText[lang], TopicInsurance
	}

	normalized := normalizeHinglish(message)
	if rec := a.lookupPlace(message); rec != nil {
		return renderPlace(rec, lang), TopicLocation
	}
	if rec := a.lookupPlace(normalized); rec != nil {
		return renderPlace(rec, lang), TopicLocation
	}

	if containsAny(message, soilTriggers) {
		return soilText[lang], TopicSoil
	}

	if containsAny(message, cropTriggers) {
		return cropsText[lang], TopicCrops
	}

	return defaultText[lang], TopicDefault
}

// Welcome returns the per-language greeting inserted when a session opens.
func Welcome(lang string) string {
	if !locale.Known(lang) {
		lang = locale.DefaultLanguage
	}
	return welcomeText[lang]
}

// SpeechErrorMessage maps a speech capture error code to a localized
// user-facing message. Unrecognized codes get the generic message.
func SpeechErrorMessage(code, lang string) string {
	if !locale.Known(lang) {
		lang = locale.DefaultLanguage
	}
	if byLang, ok := speechErrorText[code]; ok {
		return byLang[lang]
	}
	return speechErrorGeneric[lang]
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func containsAny(message string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(message, tok) {
			return true
		}
	}
	return false
}
