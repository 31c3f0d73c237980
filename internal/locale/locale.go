package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Swahili = "sw"
)

// Supported lists the interface languages in preference order.
var Supported = []string{English, Swahili}

var (
	supportedTags = []language.Tag{language.English, language.Swahili}
	matcher       = language.NewMatcher(supportedTags)
)

var languageNames = map[string]string{
	"english":    English,
	"kiingereza": English,
	"swahili":    Swahili,
	"kiswahili":  Swahili,
}

// Normalize maps a language tag or name ("sw-KE", "Kiswahili", "EN") to a supported
// code. It reports false and returns English when nothing matches.
func Normalize(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return English, false
	}
	if code, ok := languageNames[value]; ok {
		return code, true
	}

	tag, err := language.Parse(value)
	if err != nil {
		return English, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, false
	}
	return Supported[idx], true
}

// Name is the language's name written in that language.
func Name(code string) string {
	switch code {
	case Swahili:
		return "Kiswahili"
	default:
		return "English"
	}
}
