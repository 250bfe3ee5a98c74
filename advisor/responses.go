package advisor

import (
	"fmt"
	"strings"
)

// Canned response texts keyed by language code. Trigger tokens are shared
// across languages; the rendered text follows the active chat language.

var welcomeText = map[string]string{
	"hi": "नमस्कार! 🌾 मैं आपका कृषि सलाहकार हूं। आप मुझसे मिट्टी, फसल, मौसम या खेती के बारे में कुछ भी पूछ सकते हैं। आप अपना स्थान भी बता सकते हैं ताकि मैं आपको स्थानीय मिट्टी की जानकारी दे सकूं।",
	"en": "Hello! 🌾 I'm your agriculture advisor. You can ask me anything about soil, crops, weather, or farming. You can also tell me your location so I can provide local soil information.",
	"pa": "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! 🌾 ਮੈਂ ਤੁਹਾਡਾ ਖੇਤੀਬਾੜੀ ਸਲਾਹਕਾਰ ਹਾਂ। ਤੁਸੀਂ ਮਿੱਟੀ, ਫਸਲਾਂ, ਮੌਸਮ ਜਾਂ ਖੇਤੀਬਾੜੀ ਬਾਰੇ ਕੁਝ ਵੀ ਪੁੱਛ ਸਕਦੇ ਹੋ। ਤੁਸੀਂ ਆਪਣਾ ਸਥਾਨ ਵੀ ਦੱਸ ਸਕਦੇ ਹੋ ਤਾਂ ਜੋ ਮੈਂ ਤੁਹਾਨੂੰ ਸਥਾਨਕ ਮਿੱਟੀ ਦੀ ਜਾਣਕਾਰੀ ਦੇ ਸਕਾਂ।",
}

var schemePunjabText = map[string]string{
	"hi": "पंजाब सरकारी योजनाएं:\n• कृषि अवसंरचना फंड (AIF)\n• पंजाब ई-मंडी/ई-NAM\n• मिट्टी स्वास्थ्य कार्ड योजना\n• कृषि गृह सहायता योजना",
	"en": "Punjab Government Schemes:\n• Agriculture Infrastructure Fund (AIF)\n• Punjab e-Mandi/e-NAM\n• Soil Health Card Scheme\n• Agriculture House Assistance Scheme",
	"pa": "ਪੰਜਾਬ ਸਰਕਾਰੀ ਯੋਜਨਾਵਾਂ:\n• ਖੇਤੀਬਾੜੀ ਬੁਨਿਆਦੀ ਢਾਂਚਾ ਫੰਡ (AIF)\n• ਪੰਜਾਬ ਈ-ਮੰਡੀ/ਈ-NAM\n• ਮਿੱਟੀ ਸਿਹਤ ਕਾਰਡ ਯੋਜਨਾ\n• ਖੇਤੀਬਾੜੀ ਘਰ ਸਹਾਇਤਾ ਯੋਜਨਾ",
}

var schemeBiharText = map[string]string{
	"hi": "बिहार सरकारी योजनाएं:\n• सिंचाई सब्सिडी (₹140 करोड़)\n• मुफ्त सोयाबीन बीज (₹4,000/एकड़)\n• सब्जी विकास (75% सब्सिडी)\n• पॉली हाउस सब्सिडी (50%)",
	"en": "Bihar Government Schemes:\n• Irrigation Subsidy (₹140 crore)\n• Free Soybean Seeds (₹4,000/acre)\n• Vegetable Development (75% subsidy)\n• Polyhouse Subsidy (50%)",
	"pa": "ਬਿਹਾਰ ਸਰਕਾਰੀ ਯੋਜਨਾਵਾਂ:\n• ਸਿੰਚਾਈ ਸਬਸਿਡੀ (₹140 ਕਰੋੜ)\n• ਮੁਫਤ ਸੋਇਆਬੀਨ ਬੀਜ (₹4,000/ਏਕੜ)\n• ਸਬਜ਼ੀ ਵਿਕਾਸ (75% ਸਬਸਿਡੀ)\n• ਪੌਲੀਹਾਊਸ ਸਬਸਿਡੀ (50%)",
}

var schemeGeneralText = map[string]string{
	"hi": "पंजाब, यूपी, बिहार और एमपी के लिए सरकारी योजनाएं उपलब्ध हैं। कृपया अपना राज्य बताएं।",
	"en": "Government schemes available for Punjab, UP, Bihar, and MP. Please specify your state.",
	"pa": "ਪੰਜਾਬ, ਯੂਪੀ, ਬਿਹਾਰ ਅਤੇ ਐਮਪੀ ਲਈ ਸਰਕਾਰੀ ਯੋਜਨਾਵਾਂ ਉਪਲਬਧ ਹਨ। ਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਰਾਜ ਦੱਸੋ।",
}

var insuranceText = map[string]string{
	"hi": "🛡️ **फसल बीमा (PMFBY):**\n\nप्रधानमंत्री फसल बीमा योजना के तहत:\n• खरीफ फसलों के लिए 2% प्रीमियम\n• रबी फसलों के लिए 1.5% प्रीमियम\n• वाणिज्यिक/बागवानी फसलों के लिए 5% प्रीमियम\n\nदावे के लिए नजदीकी बैंक या CSC केंद्र से संपर्क करें।",
	"en": "🛡️ **Crop Insurance (PMFBY):**\n\nUnder Pradhan Mantri Fasal Bima Yojana:\n• 2% premium for Kharif crops\n• 1.5% premium for Rabi crops\n• 5% premium for commercial/horticulture crops\n\nContact your nearest bank or CSC center for claims.",
	"pa": "🛡️ **ਫਸਲ ਬੀਮਾ (PMFBY):**\n\nਪ੍ਰਧਾਨ ਮੰਤਰੀ ਫਸਲ ਬੀਮਾ ਯੋਜਨਾ ਦੇ ਤਹਿਤ:\n• ਖਰੀਫ ਫਸਲਾਂ ਲਈ 2% ਪ੍ਰੀਮੀਅਮ\n• ਰਬੀ ਫਸਲਾਂ ਲਈ 1.5% ਪ੍ਰੀਮੀਅਮ\n• ਵਪਾਰਕ/ਬਾਗਬਾਨੀ ਫਸਲਾਂ ਲਈ 5% ਪ੍ਰੀਮੀਅਮ\n\nਦਾਅਵੇ ਲਈ ਨਜ਼ਦੀਕੀ ਬੈਂਕ ਜਾਂ CSC ਕੇਂਦਰ ਨਾਲ ਸੰਪਰਕ ਕਰੋ।",
}

var soilText = map[string]string{
	"hi": "🌱 **मिट्टी की जानकारी:**\n\nमिट्टी के मुख्य प्रकार:\n• **दोमट मिट्टी (Loamy)** - सबसे अच्छी खेती के लिए\n• **चिकनी मिट्टी (Clay)** - पानी रोकने में अच्छी\n• **रेतीली मिट्टी (Sandy)** - जल निकासी अच्छी\n\nकृपया अपना स्थान बताएं ताकि मैं आपको स्थानीय मिट्टी की विस्तृत जानकारी दे सकूं।",
	"en": "🌱 **Soil Information:**\n\nMain Soil Types:\n• **Loamy Soil** - Best for farming\n• **Clay Soil** - Good water retention\n• **Sandy Soil** - Good drainage\n\nPlease tell me your location so I can provide detailed local soil information.",
	"pa": "🌱 **ਮਿੱਟੀ ਦੀ ਜਾਣਕਾਰੀ:**\n\nਮਿੱਟੀ ਦੇ ਮੁੱਖ ਕਿਸਮ:\n• **ਦੋਮਟ ਮਿੱਟੀ** - ਖੇਤੀਬਾੜੀ ਲਈ ਸਭ ਤੋਂ ਵਧੀਆ\n• **ਮਿੱਟੀ ਮਿੱਟੀ** - ਪਾਣੀ ਰੱਖਣ ਵਿੱਚ ਚੰਗੀ\n• **ਰੇਤਲੀ ਮਿੱਟੀ** - ਪਾਣੀ ਨਿਕਾਸ ਚੰਗੀ\n\nਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਸਥਾਨ ਦੱਸੋ ਤਾਂ ਜੋ ਮੈਂ ਤੁਹਾਨੂੰ ਸਥਾਨਕ ਮਿੱਟੀ ਦੀ ਵਿਸਥਾਰ ਜਾਣਕਾਰੀ ਦੇ ਸਕਾਂ।",
}

var cropsText = map[string]string{
	"hi": "🌾 **फसल की सिफारिशें:**\n\n**रबी फसलें (अक्टूबर-मार्च):**\n• गेहूं, जौ, चना, मसूर, सरसों\n\n**खरीफ फसलें (जून-सितम्बर):**\n• धान, मक्का, ज्वार, बाजरा, कपास\n\n**जायद फसलें (मार्च-जून):**\n• तरबूज, खरबूजा, खीरा, लौकी\n\nआपकी मिट्टी और क्षेत्र के अनुसार सटीक सुझाव के लिए कृपया अपना स्थान बताएं।",
	"en": "🌾 **Crop Recommendations:**\n\n**Rabi Crops (Oct-Mar):**\n• Wheat, Barley, Gram, Lentil, Mustard\n\n**Kharif Crops (Jun-Sep):**\n• Rice, Maize, Jowar, Bajra, Cotton\n\n**Zaid Crops (Mar-Jun):**\n• Watermelon, Muskmelon, Cucumber, Bottle gourd\n\nFor precise suggestions based on your soil and region, please tell me your location.",
	"pa": "🌾 **ਫਸਲਾਂ ਦੀਆਂ ਸਿਫਾਰਸ਼ਾਂ:**\n\n**ਰਬੀ ਫਸਲਾਂ (ਅਕਤੂਬਰ-ਮਾਰਚ):**\n• ਕਣਕ, ਜੌਂ, ਚਨਾ, ਮਸੂਰ, ਸਰ੍ਹੋਂ\n\n**ਖਰੀਫ ਫਸਲਾਂ (ਜੂਨ-ਸਤੰਬਰ):**\n• ਝੋਨਾ, ਮੱਕੀ, ਜੁਆਰ, ਬਜਰਾ, ਕਪਾਹ\n\n**ਜਾਇਦ ਫਸਲਾਂ (ਮਾਰਚ-ਜੂਨ):**\n• ਤਰਬੂਜ਼, ਖਰਬੂਜ਼ਾ, ਖੀਰਾ, ਲੌਕੀ\n\nਤੁਹਾਡੀ ਮਿੱਟੀ ਅਤੇ ਖੇਤਰ ਅਨੁਸਾਰ ਸਹੀ ਸੁਝਾਵਾਂ ਲਈ ਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਸਥਾਨ ਦੱਸੋ।",
}

var defaultText = map[string]string{
	"hi": "🤖 मैं आपकी मदद करना चाहता हूं! आप मुझसे पूछ सकते हैं:\n\n• 🌱 मिट्टी की जानकारी\n• 🌾 फसल की सिफारिशें\n• 🌤️ मौसम और खेती\n• 🧪 उर्वरक और खाद\n• 🐛 कीट-रोग नियंत्रण\n• 💰 बाजार की कीमतें\n\nकुछ और जानना चाहते हैं?",
	"en": "🤖 I'm here to help you! You can ask me about:\n\n• 🌱 Soil information\n• 🌾 Crop recommendations\n• 🌤️ Weather and farming\n• 🧪 Fertilizers and manure\n• 🐛 Pest and disease control\n• 💰 Market prices\n\nWhat would you like to know?",
	"pa": "🤖 ਮੈਂ ਤੁਹਾਡੀ ਮਦਦ ਕਰਨਾ ਚਾਹੁੰਦਾ ਹਾਂ! ਤੁਸੀਂ ਮੈਨੂੰ ਪੁੱਛ ਸਕਦੇ ਹੋ:\n\n• 🌱 ਮਿੱਟੀ ਦੀ ਜਾਣਕਾਰੀ\n• 🌾 ਫਸਲਾਂ ਦੀਆਂ ਸਿਫਾਰਸ਼ਾਂ\n• 🌤️ ਮੌਸਮ ਅਤੇ ਖੇਤੀਬਾੜੀ\n• 🧪 ਖਾਦ ਅਤੇ ਉਰਵਰਕ\n• 🐛 ਕੀੜੇ ਅਤੇ ਰੋਗ ਨਿਯੰਤਰਣ\n• 💰 ਮੰਡੀ ਦੇ ਭਾਵ\n\nਕੀ ਜਾਣਨਾ ਚਾਹੁੰਦੇ ਹੋ?",
}

// renderPlace formats a matched PlaceRecord in the active chat language.
// Only the Hindi variant includes the record's free-text soil description;
// English and Punjabi carry a generic description, as the product copy does.
func renderPlace(rec *PlaceRecord, lang string) string {
	crops := strings.Join(rec.RecommendedCrops, ", ")
	switch lang {
	case "en":
		return fmt.Sprintf("📍 **Soil Information for %s, %s:**\n\n🌱 **Soil Type:** %s\n\n📝 **Description:** This soil type is suitable for various crops and has good fertility.\n\n🌾 **Recommended Crops:** %s\n\n💡 **Suggestion:** Use proper drainage and balanced fertilizers for farming in this soil.",
			rec.District, rec.State, rec.SoilType, crops)
	case "pa":
		return fmt.Sprintf("📍 **%s, %s ਦੀ ਮਿੱਟੀ ਦੀ ਜਾਣਕਾਰੀ:**\n\n🌱 **ਮਿੱਟੀ ਦਾ ਕਿਸਮ:** %s\n\n📝 **ਵੇਰਵਾ:** ਇਹ ਮਿੱਟੀ ਖੇਤੀਬਾੜੀ ਲਈ ਚੰਗੀ ਅਤੇ ਉਪਜਾਊ ਹੈ।\n\n🌾 **ਸਿਫਾਰਸ਼ੀ ਫਸਲਾਂ:** %s\n\n💡 **ਸੁਝਾਵ:** ਇਸ ਮਿੱਟੀ ਵਿੱਚ ਖੇਤੀਬਾੜੀ ਲਈ ਸਹੀ ਪਾਣੀ ਨਿਕਾਸ ਅਤੇ ਸੰਤੁਲਿਤ ਖਾਦ ਦਾ ਵਰਤੋਂ ਕਰੋ।",
			rec.District, rec.State, rec.SoilType, crops)
	default:
		return fmt.Sprintf("📍 **%s, %s की मिट्टी की जानकारी:**\n\n🌱 **मिट्टी का प्रकार:** %s\n\n📝 **विवरण:** %s\n\n🌾 **अनुशंसित फसलें:** %s\n\n💡 **सुझाव:** इस मिट्टी में खेती के लिए उचित जल निकासी और संतुलित उर्वरक का उपयोग करें।",
			rec.District, rec.State, rec.SoilType, rec.SoilDescription, crops)
	}
}

// Speech capture error codes, as reported by the browser SpeechRecognition API.
const (
	SpeechErrNotAllowed  = "not-allowed"
	SpeechErrNoSpeech    = "no-speech"
	SpeechErrNetwork     = "network"
	SpeechErrUnsupported = "unsupported"
)

var speechErrorText = map[string]map[string]string{
	SpeechErrNotAllowed: {
		"hi": "माइक्रोफोन की अनुमति नहीं मिली। कृपया ब्राउज़र सेटिंग्स में माइक्रोफोन की अनुमति दें।",
		"en": "Microphone permission was denied. Please allow microphone access in your browser settings.",
		"pa": "ਮਾਈਕ੍ਰੋਫੋਨ ਦੀ ਇਜਾਜ਼ਤ ਨਹੀਂ ਮਿਲੀ। ਕਿਰਪਾ ਕਰਕੇ ਬ੍ਰਾਊਜ਼ਰ ਸੈਟਿੰਗਾਂ ਵਿੱਚ ਮਾਈਕ੍ਰੋਫੋਨ ਦੀ ਇਜਾਜ਼ਤ ਦਿਓ।",
	},
	SpeechErrNoSpeech: {
		"hi": "कोई आवाज़ नहीं सुनी गई। कृपया दोबारा बोलने की कोशिश करें।",
		"en": "No speech was detected. Please try speaking again.",
		"pa": "ਕੋਈ ਆਵਾਜ਼ ਨਹੀਂ ਸੁਣੀ ਗਈ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਬੋਲਣ ਦੀ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
	},
	SpeechErrNetwork: {
		"hi": "नेटवर्क त्रुटि। कृपया अपना इंटरनेट कनेक्शन जांचें।",
		"en": "Network error. Please check your internet connection.",
		"pa": "ਨੈੱਟਵਰਕ ਗਲਤੀ। ਕਿਰਪਾ ਕਰਕੇ ਆਪਣਾ ਇੰਟਰਨੈੱਟ ਕਨੈਕਸ਼ਨ ਜਾਂਚੋ।",
	},
	SpeechErrUnsupported: {
		"hi": "आपका ब्राउज़र वॉयस इनपुट सपोर्ट नहीं करता। कृपया Chrome या Edge का उपयोग करें।",
		"en": "Your browser does not support voice input. Please use Chrome or Edge.",
		"pa": "ਤੁਹਾਡਾ ਬ੍ਰਾਊਜ਼ਰ ਵੌਇਸ ਇਨਪੁਟ ਸਪੋਰਟ ਨਹੀਂ ਕਰਦਾ। ਕਿਰਪਾ ਕਰਕੇ Chrome ਜਾਂ Edge ਦੀ ਵਰਤੋਂ ਕਰੋ।",
	},
}

var speechErrorGeneric = map[string]string{
	"hi": "वॉयस इनपुट में त्रुटि हुई। कृपया फिर से कोशिश करें।",
	"en": "Voice input failed. Please try again.",
	"pa": "ਵੌਇਸ ਇਨਪੁਟ ਵਿੱਚ ਗਲਤੀ ਹੋਈ। ਕਿਰਪਾ ਕਰਕੇ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
}
