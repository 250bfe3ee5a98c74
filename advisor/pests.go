package advisor

import "fmt"

// pestProfile is the canned pest/disease data for one crop. Image analysis
// is simulated: the reply is keyed by the crop the user picked, not by the
// image contents.
type pestProfile struct {
	label     string
	pest      string
	disease   string
	treatment string
}

var pestProfiles = map[string]pestProfile{
	"wheat": {
		label:     "गेहूं / Wheat",
		pest:      "Aphids (एफिड्स)",
		disease:   "Yellow Rust (पीला रतुआ)",
		treatment: "Imidacloprid 17.8% SL @ 0.3ml/liter",
	},
	"rice": {
		label:     "धान / Rice",
		pest:      "Brown Plant Hopper (भूरा फुदका)",
		disease:   "Blast Disease (ब्लास्ट रोग)",
		treatment: "Thiamethoxam 25% WG @ 0.2g/liter",
	},
	"cotton": {
		label:     "कपास / Cotton",
		pest:      "Bollworm (सुंडी)",
		disease:   "Wilt Disease (मुरझाना रोग)",
		treatment: "Cypermethrin 10% EC @ 1ml/liter",
	},
}

// ImageUploadNotice is the user-side history entry for an image upload.
func ImageUploadNotice(filename, lang string) string {
	switch lang {
	case "en":
		return fmt.Sprintf("📸 Image uploaded: %s", filename)
	case "pa":
		return fmt.Sprintf("📸 ਤਸਵੀਰ ਅਪਲੋਡ ਕੀਤੀ ਗਈ: %s", filename)
	default:
		return fmt.Sprintf("📸 छवि अपलोड की गई: %s", filename)
	}
}

// AnalyzeImage returns the canned crop-keyed analysis text for an uploaded
// image. Unknown crops fall back to wheat.
func AnalyzeImage(crop, filename, lang string) string {
	data, ok := pestProfiles[crop]
	if !ok {
		data = pestProfiles["wheat"]
	}
	switch lang {
	case "en":
		return fmt.Sprintf("📸 **Image Analysis Report** (%s)\n\n🌾 **Crop:** %s\n\n🐛 **Likely Pest:** %s\n🦠 **Likely Disease:** %s\n\n💊 **Treatment Suggestion:**\n• %s\n• Spray in the morning or evening\n• Repeat after 15 days if needed\n\n⚠️ **Precautions:**\n• Wear protective equipment\n• Mind the wind direction\n• Keep away from children and animals",
			filename, data.label, data.pest, data.disease, data.treatment)
	case "pa":
		return fmt.Sprintf("📸 **ਤਸਵੀਰ ਵਿਸ਼ਲੇਸ਼ਣ ਰਿਪੋਰਟ** (%s)\n\n🌾 **ਫਸਲ:** %s\n\n🐛 **ਸੰਭਾਵਿਤ ਕੀੜਾ:** %s\n🦠 **ਸੰਭਾਵਿਤ ਰੋਗ:** %s\n\n💊 **ਇਲਾਜ ਸੁਝਾਅ:**\n• %s\n• ਛਿੜਕਾਅ ਸਵੇਰੇ ਜਾਂ ਸ਼ਾਮ ਨੂੰ ਕਰੋ\n• ਲੋੜ ਪੈਣ ਤੇ 15 ਦਿਨਾਂ ਬਾਅਦ ਦੁਹਰਾਓ\n\n⚠️ **ਸਾਵਧਾਨੀਆਂ:**\n• ਸੁਰੱਖਿਆ ਉਪਕਰਣ ਪਹਿਨੋ\n• ਹਵਾ ਦੀ ਦਿਸ਼ਾ ਦਾ ਧਿਆਨ ਰੱਖੋ\n• ਬੱਚਿਆਂ ਅਤੇ ਪਸ਼ੂਆਂ ਤੋਂ ਦੂਰ ਰੱਖੋ",
			filename, data.label, data.pest, data.disease, data.treatment)
	default:
		return fmt.Sprintf("📸 **छवि विश्लेषण रिपोर्ट** (%s)\n\n🌾 **फसल:** %s\n\n🐛 **संभावित कीट:** %s\n🦠 **संभावित रोग:** %s\n\n💊 **उपचार सुझाव:**\n• %s\n• छिड़काव सुबह या शाम के समय करें\n• 15 दिन बाद दोहराएं यदि आवश्यक हो\n\n⚠️ **सावधानियां:**\n• सुरक्षा उपकरण पहनें\n• हवा की दिशा का ध्यान रखें\n• बच्चों और पशुओं से दूर रखें",
			filename, data.label, data.pest, data.disease, data.treatment)
	}
}
