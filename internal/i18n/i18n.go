// Package i18n maps a language tag and key to user-facing display text.
// Lookups are pure functions over a static table; unknown languages and
// keys fall back to English.
package i18n

import "strings"

const fallback = "en"

var translations = map[string]map[string]string{
	"en": {
		"loginFailed":             "Login failed. Please check your credentials.",
		"unauthorized":            "You must be logged in to do that.",
		"adminOnly":               "Only administrators can do that.",
		"invalidRequest":          "Invalid request body.",
		"missingFields":           "Please fill in all required fields.",
		"invalidFine":             "Fine must be a positive amount.",
		"duplicateCustomField":    "A field with that name already exists.",
		"photoSizeError":          "Photo must be smaller than 2 MB.",
		"challanFailed":           "Could not issue the challan.",
		"vehicleSearchError":      "Could not fetch vehicle information.",
		"ruleSearchError":         "Could not search the rule book.",
		"errorSuggestingOffenses": "Could not get offense suggestions.",
		"noPosition":              "No location has been reported yet.",
		"invalidTheme":            "Theme must be light, dark or system.",
		"notFound":                "Not found.",
		"greeting":                "Welcome, {{name}}!",
	},
	"hi": {
		"loginFailed":             "लॉगिन विफल रहा। कृपया अपनी जानकारी जांचें।",
		"unauthorized":            "इसके लिए आपको लॉगिन करना होगा।",
		"adminOnly":               "केवल प्रशासक ही यह कर सकते हैं।",
		"invalidRequest":          "अमान्य अनुरोध।",
		"missingFields":           "कृपया सभी आवश्यक फ़ील्ड भरें।",
		"invalidFine":             "जुर्माना धनात्मक राशि होनी चाहिए।",
		"duplicateCustomField":    "इस नाम का फ़ील्ड पहले से मौजूद है।",
		"photoSizeError":          "फोटो 2 MB से छोटी होनी चाहिए।",
		"challanFailed":           "चालान जारी नहीं हो सका।",
		"vehicleSearchError":      "वाहन की जानकारी प्राप्त नहीं हो सकी।",
		"ruleSearchError":         "नियम पुस्तिका में खोज नहीं हो सकी।",
		"errorSuggestingOffenses": "अपराध सुझाव प्राप्त नहीं हो सके।",
		"noPosition":              "अभी तक कोई स्थान रिपोर्ट नहीं हुआ है।",
		"invalidTheme":            "थीम light, dark या system होनी चाहिए।",
		"notFound":                "नहीं मिला।",
		"greeting":                "स्वागत है, {{name}}!",
	},
}

// Match normalizes a language tag ("hi-IN", "en-US") to a supported
// language, falling back to English.
func Match(tag string) string {
	lang := strings.ToLower(tag)
	if i := strings.IndexAny(lang, "-_,;"); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := translations[lang]; ok {
		return lang
	}
	return fallback
}

// T returns the display text for key in lang, falling back to English and
// finally to the key itself.
func T(lang, key string) string {
	if text, ok := translations[Match(lang)][key]; ok {
		return text
	}
	if text, ok := translations[fallback][key]; ok {
		return text
	}
	return key
}

// Tf is T with {{placeholder}} interpolation.
func Tf(lang, key string, opts map[string]string) string {
	text := T(lang, key)
	for placeholder, value := range opts {
		text = strings.ReplaceAll(text, "{{"+placeholder+"}}", value)
	}
	return text
}
