package locale

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// swahiliTerms maps English terms to Swahili. Multi-word phrases win over their parts.
var swahiliTerms = map[string]string{
	"all":            "zote",
	"agriculture":    "kilimo",
	"and":            "na",
	"application":    "ombi",
	"applications":   "maombi",
	"applied":        "umeomba",
	"apply":          "omba",
	"accepted":       "imekubaliwa",
	"category":       "aina",
	"cleaning":       "usafi",
	"construction":   "ujenzi",
	"contact":        "wasiliana",
	"cook":           "mpishi",
	"cooking":        "upishi",
	"day":            "siku",
	"description":    "maelezo",
	"domestic":       "nyumbani",
	"driver":         "dereva",
	"driving":        "udereva",
	"employee":       "mfanyakazi",
	"employees":      "wafanyakazi",
	"employer":       "mwajiri",
	"employers":      "waajiri",
	"farm":           "shamba",
	"farm worker":    "mfanyakazi wa shamba",
	"farmer":         "mkulima",
	"farming":        "kilimo",
	"favorite":       "kipendwa",
	"favorites":      "vipendwa",
	"guard":          "mlinzi",
	"house help":     "msaidizi wa nyumbani",
	"job":            "kazi",
	"jobs":           "kazi",
	"location":       "mahali",
	"login":          "ingia",
	"logout":         "toka",
	"market":         "soko",
	"month":          "mwezi",
	"name":           "jina",
	"no jobs found":  "hakuna kazi zilizopatikana",
	"pending":        "inasubiri",
	"phone":          "simu",
	"posted":         "imechapishwa",
	"profile":        "wasifu",
	"rejected":       "imekataliwa",
	"salary":         "mshahara",
	"search":         "tafuta",
	"security guard": "mlinzi",
	"shop":           "duka",
	"skills":         "ujuzi",
	"mechanic":       "fundi",
	"today":          "leo",
	"water":          "maji",
	"week":           "wiki",
	"welcome":        "karibu",
	"work":           "kazi",
	"worker":         "mfanyakazi",
	"workers":        "wafanyakazi",
}

type dictionary struct {
	terms   map[string]string
	pattern *regexp.Regexp
}

var dictionaries = map[string]*dictionary{
	Swahili: newDictionary(swahiliTerms),
}

func newDictionary(terms map[string]string) *dictionary {
	folder := cases.Fold()
	keys := make([]string, 0, len(terms))
	folded := make(map[string]string, len(terms))
	for term, target := range terms {
		keys = append(keys, term)
		folded[folder.String(term)] = target
	}
	// RE2 alternation is leftmost-first, so longer phrases must come first.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	quoted := make([]string, 0, len(keys))
	for _, key := range keys {
		quoted = append(quoted, regexp.QuoteMeta(key))
	}
	return &dictionary{
		terms:   folded,
		pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
	}
}

// Translate substitutes whole-word, case-insensitive dictionary terms of text with their
// target-language equivalents in one pass. A capitalized source word yields a capitalized
// replacement. Unsupported targets and English return text unchanged.
func Translate(text string, target string) string {
	code, ok := Normalize(target)
	if !ok || code == English {
		return text
	}
	dict, ok := dictionaries[code]
	if !ok || text == "" {
		return text
	}
	// Casers carry state, so each call gets its own.
	folder := cases.Fold()
	return dict.pattern.ReplaceAllStringFunc(text, func(match string) string {
		replacement, ok := dict.terms[folder.String(match)]
		if !ok {
			return match
		}
		first, _ := utf8.DecodeRuneInString(match)
		if unicode.IsUpper(first) {
			return capitalize(replacement)
		}
		return replacement
	})
}

func capitalize(value string) string {
	first, size := utf8.DecodeRuneInString(value)
	if first == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(first)) + value[size:]
}
