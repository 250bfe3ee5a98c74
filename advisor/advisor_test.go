package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeRulePunjab(t *testing.T) {
	a := New()
	got := a.Respond("punjab yojna", "hi")
	assert.Equal(t, schemePunjabText["hi"], got)
}

func TestSchemeRuleBihar(t *testing.T) {
	a := New()
	got := a.Respond("bihar scheme", "en")
	assert.Equal(t, schemeBiharText["en"], got)
}

func TestSchemeRuleGeneric(t *testing.T) {
	a := New()
	got := a.Respond("koi sarkari scheme batao", "hi")
	assert.Equal(t, schemeGeneralText["hi"], got)
}

func TestSchemeRuleWinsOverLocation(t *testing.T) {
	// "punjab yojna" mentions a region, but the scheme rule runs first and
	// returns the Punjab scheme text, not the Ludhiana place record.
	a := New()
	got := a.Respond("punjab yojna", "en")
	assert.Equal(t, schemePunjabText["en"], got)
}

func TestInsuranceRule(t *testing.T) {
	a := New()
	got := a.Respond("insurance pmfby", "pa")
	assert.Equal(t, insuranceText["pa"], got)
}

func TestInsuranceRuleWinsOverSoil(t *testing.T) {
	a := New()
	got := a.Respond("soil kharab hai aur pmfby insurance chahiye", "pa")
	assert.Equal(t, insuranceText["pa"], got)
}

func TestLocationDistrictWithoutRegion(t *testing.T) {
	a := New()
	got := a.Respond("ludhiana", "hi")
	assert.Contains(t, got, "Ludhiana, Punjab")
	assert.Contains(t, got, "Loamy Alluvial Soil")
}

func TestLocationRegionOnlyReturnsFirstDistrict(t *testing.T) {
	// A region-only match resolves to the first district in table order,
	// which for Punjab is Ludhiana.
	a := New()
	got := a.Respond("punjab", "en")
	assert.Contains(t, got, "Ludhiana, Punjab")
	assert.NotContains(t, got, "Sangrur")
}

func TestLocationRegionAndDistrict(t *testing.T) {
	a := New()
	got := a.Respond("i farm near bathinda in punjab", "en")
	assert.Contains(t, got, "Bathinda, Punjab")
	assert.Contains(t, got, "Sandy Loam Alluvial")
}

func TestLocationRendersInActiveLanguage(t *testing.T) {
	a := New()
	hi := a.Respond("patna", "hi")
	en := a.Respond("patna", "en")
	assert.Contains(t, hi, "की मिट्टी की जानकारी")
	assert.Contains(t, en, "Soil Information for Patna, Bihar")
	// Hindi includes the record's free-text description, English does not.
	assert.Contains(t, hi, "Karail-Kewal")
}

func TestSoilRule(t *testing.T) {
	a := New()
	assert.Equal(t, soilText["en"], a.Respond("tell me about soil", "en"))
	assert.Equal(t, soilText["hi"], a.Respond("mitti kaisi hai", "hi"))
}

func TestCropRuleTriggerFromAnyLanguage(t *testing.T) {
	// A trigger token from a non-active language still fires the rule; the
	// response follows the active language.
	a := New()
	assert.Equal(t, cropsText["pa"], a.Respond("which crop should i sow", "pa"))
	assert.Equal(t, cropsText["en"], a.Respond("ਫਸਲ", "en"))
}

func TestDefaultRule(t *testing.T) {
	a := New()
	assert.Equal(t, defaultText["en"], a.Respond("xyzabc nonsense", "en"))
}

func TestRespondIsPure(t *testing.T) {
	a := New()
	first := a.Respond("punjab yojna", "hi")
	second := a.Respond("punjab yojna", "hi")
	assert.Equal(t, first, second)
}

func TestRespondUnknownLanguageFallsBack(t *testing.T) {
	a := New()
	assert.Equal(t, defaultText["hi"], a.Respond("xyzabc nonsense", "zz-unknown"))
}

func TestReplyTopics(t *testing.T) {
	a := New()
	cases := map[string]string{
		"punjab yojna":    TopicScheme,
		"crop insurance":  TopicInsurance,
		"ludhiana":        TopicLocation,
		"soil info":       TopicSoil,
		"kheti":           TopicDefault, // "kheti" is not a crop trigger, खेती is
		"खेती कैसे करें":  TopicCrops,
		"xyzabc nonsense": TopicDefault,
	}
	for input, want := range cases {
		_, topic := a.Reply(input, "en")
		assert.Equal(t, want, topic, "input %q", input)
	}
}

func TestHinglishNormalizationReachesLocation(t *testing.T) {
	// The normalization rewrites romanized tokens to Devanagari before the
	// place scan; plain place names must still match either way.
	a := New()
	got := a.Respond("sangrur me kheti kaise kare", "hi")
	assert.Contains(t, got, "Sangrur, Punjab")
}

func TestWelcome(t *testing.T) {
	for _, lang := range []string{"hi", "en", "pa"} {
		require.NotEmpty(t, Welcome(lang))
	}
	assert.Equal(t, Welcome("hi"), Welcome("zz-unknown"))
	assert.Contains(t, Welcome("en"), "agriculture advisor")
}

func TestSpeechErrorMessages(t *testing.T) {
	for _, code := range []string{SpeechErrNotAllowed, SpeechErrNoSpeech, SpeechErrNetwork, SpeechErrUnsupported} {
		for _, lang := range []string{"hi", "en", "pa"} {
			require.NotEmpty(t, SpeechErrorMessage(code, lang), "code %s lang %s", code, lang)
		}
	}
	// Unrecognized codes map to the generic message.
	assert.Equal(t, speechErrorGeneric["en"], SpeechErrorMessage("aborted", "en"))
}

func TestAnalyzeImage(t *testing.T) {
	got := AnalyzeImage("rice", "paddy.jpg", "hi")
	assert.Contains(t, got, "paddy.jpg")
	assert.Contains(t, got, "Brown Plant Hopper")

	// Unknown crops fall back to wheat.
	fallback := AnalyzeImage("dragonfruit", "x.png", "en")
	assert.Contains(t, fallback, "Aphids")
}

func TestTriggerTokensAreLowercase(t *testing.T) {
	// Matching runs over lowercased input, so uppercase trigger tokens
	// could never fire.
	all := [][]string{schemeTriggers, punjabTriggers, biharTriggers, insuranceTriggers, soilTriggers, cropTriggers}
	for _, set := range all {
		for _, tok := range set {
			assert.Equal(t, strings.ToLower(tok), tok)
		}
	}
}
