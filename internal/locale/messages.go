package locale

import "fmt"

var messages = map[string]map[string]string{
	English: {
		"auth.required":          "Please log in first.",
		"auth.employer_only":     "Only employers can do this.",
		"login.success":          "Welcome back, %s!",
		"register.success":       "Welcome to Kazi Mashinani, %s!",
		"logout.success":         "You have been logged out.",
		"whoami.anonymous":       "Not logged in.",
		"apply.success":          "Application sent for %s.",
		"apply.already":          "You have already applied for this job.",
		"favorite.added":         "Saved %s to favorites.",
		"favorite.removed":       "Removed %s from favorites.",
		"favorite.busy":          "A request for this job is still in progress.",
		"favorites.none":         "You have no favorite jobs yet.",
		"network.error":          "Could not reach the server: %s",
		"network.offline":        "The server is unreachable; showing saved jobs.",
		"jobs.none":              "No jobs found.",
		"jobs.match":             "%d jobs match your skills",
		"jobs.page":              "Page %d of %d (%d jobs)",
		"job.not_found":          "Job %s was not found.",
		"job.posted":             "Job posted: %s",
		"applications.none":      "No applications yet.",
		"status.updated":         "Application %s is now %s.",
		"employees.none":         "No workers found.",
		"employees.page":         "Page %d of %d (%d workers)",
		"profile.updated":        "Profile updated.",
		"profile.nothing":        "Nothing to update.",
		"lang.set":               "Language set to %s.",
		"theme.dark":             "Dark mode on.",
		"theme.light":            "Dark mode off.",
		"contact.none":           "This job has no valid phone number.",
		"label.not_applied":      "Apply",
		"label.pending":          "Pending",
		"label.accepted":         "Accepted",
		"label.rejected":         "Rejected",
		"validation.required":    "%s is required.",
		"validation.required_if": "%s is required for employers.",
		"validation.ke_phone":    "%s must be a valid Kenyan phone number.",
		"validation.min":         "%s must be at least %s characters.",
		"validation.max":         "%s must be at most %s characters.",
		"validation.oneof":       "%s must be one of: %s.",
		"validation.ne":          "%s cannot be %q.",
		"contact.greeting":       "Hello, I saw your job \"%s\" on Kazi Mashinani.",
		"lang.current":           "Current language: %s.",
		"lang.unsupported":       "Unsupported language: %s.",
		"jobs.new":               "%d new jobs since you last looked.",
		"jobs.categories":        "Categories:",
		"loading":                "Loading...",
		"status.invalid":         "Invalid application status: %s.",
		"validation.invalid":     "%s is invalid.",
	},
	Swahili: {
		"auth.required":          "Tafadhali ingia kwanza.",
		"auth.employer_only":     "Ni waajiri pekee wanaoweza kufanya hivi.",
		"login.success":          "Karibu tena, %s!",
		"register.success":       "Karibu Kazi Mashinani, %s!",
		"logout.success":         "Umetoka.",
		"whoami.anonymous":       "Hujaingia.",
		"apply.success":          "Ombi limetumwa kwa %s.",
		"apply.already":          "Tayari umeomba kazi hii.",
		"favorite.added":         "%s imehifadhiwa kwenye vipendwa.",
		"favorite.removed":       "%s imeondolewa kwenye vipendwa.",
		"favorite.busy":          "Ombi la kazi hii bado linashughulikiwa.",
		"favorites.none":         "Bado huna kazi unazopenda.",
		"network.error":          "Imeshindikana kufikia seva: %s",
		"network.offline":        "Seva haipatikani; tunaonyesha kazi zilizohifadhiwa.",
		"jobs.none":              "Hakuna kazi zilizopatikana.",
		"jobs.match":             "Kazi %d zinalingana na ujuzi wako",
		"jobs.page":              "Ukurasa %d kati ya %d (kazi %d)",
		"job.not_found":          "Kazi %s haikupatikana.",
		"job.posted":             "Kazi imechapishwa: %s",
		"applications.none":      "Bado hakuna maombi.",
		"status.updated":         "Ombi %s sasa ni %s.",
		"employees.none":         "Hakuna wafanyakazi waliopatikana.",
		"employees.page":         "Ukurasa %d kati ya %d (wafanyakazi %d)",
		"profile.updated":        "Wasifu umesasishwa.",
		"profile.nothing":        "Hakuna cha kusasisha.",
		"lang.set":               "Lugha imewekwa kuwa %s.",
		"theme.dark":             "Hali ya giza imewashwa.",
		"theme.light":            "Hali ya giza imezimwa.",
		"contact.none":           "Kazi hii haina nambari sahihi ya simu.",
		"label.not_applied":      "Omba",
		"label.pending":          "Inasubiri",
		"label.accepted":         "Imekubaliwa",
		"label.rejected":         "Imekataliwa",
		"validation.required":    "%s inahitajika.",
		"validation.required_if": "%s inahitajika kwa waajiri.",
		"validation.ke_phone":    "%s lazima iwe nambari sahihi ya simu ya Kenya.",
		"validation.min":         "%s lazima iwe na angalau herufi %s.",
		"validation.max":         "%s isizidi herufi %s.",
		"validation.oneof":       "%s lazima iwe mojawapo ya: %s.",
		"validation.ne":          "%s haiwezi kuwa %q.",
		"contact.greeting":       "Habari, nimeona kazi yako \"%s\" kwenye Kazi Mashinani.",
		"lang.current":           "Lugha ya sasa: %s.",
		"lang.unsupported":       "Lugha haitumiki: %s.",
		"jobs.new":               "Kazi mpya %d tangu ulipoangalia mara ya mwisho.",
		"jobs.categories":        "Aina za kazi:",
		"loading":                "Inapakia...",
		"status.invalid":         "Hali ya ombi si sahihi: %s.",
		"validation.invalid":     "%s si sahihi.",
	},
}

// Message formats the user-facing message key in lang, falling back to English and
// then to the key itself.
func Message(lang string, key string, args ...any) string {
	code, _ := Normalize(lang)
	format, ok := messages[code][key]
	if !ok {
		format, ok = messages[English][key]
	}
	if !ok {
		format = key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Has reports whether key exists in the English catalogue.
func Has(key string) bool {
	_, ok := messages[English][key]
	return ok
}
