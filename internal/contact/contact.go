package contact

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

const (
	countryCode      = "254"
	subscriberDigits = 9
)

var ErrInvalidPhone = errors.New("invalid Kenyan phone number")

// NormalizePhone converts the local and international spellings of a Kenyan mobile
// number (0712..., 712..., 254712..., +254 712 ...) to E.164 form (+254712345678).
func NormalizePhone(raw string) (string, error) {
	digits, ok := phoneDigits(raw)
	if !ok {
		return "", ErrInvalidPhone
	}

	var subscriber string
	switch {
	case len(digits) == subscriberDigits+len(countryCode) && strings.HasPrefix(digits, countryCode):
		subscriber = digits[len(countryCode):]
	case len(digits) == subscriberDigits+1 && digits[0] == '0':
		subscriber = digits[1:]
	case len(digits) == subscriberDigits:
		subscriber = digits
	default:
		return "", ErrInvalidPhone
	}

	// Safaricom, Airtel and Telkom mobile ranges start with 7 or 1.
	if subscriber[0] != '7' && subscriber[0] != '1' {
		return "", ErrInvalidPhone
	}
	return "+" + countryCode + subscriber, nil
}

// IsValidPhone reports whether raw normalizes to a Kenyan mobile number.
func IsValidPhone(raw string) bool {
	_, err := NormalizePhone(raw)
	return err == nil
}

// FormatPhone renders a phone as "+254 712 345 678", or returns the trimmed input
// unchanged when it is not a valid number.
func FormatPhone(raw string) string {
	normalized, err := NormalizePhone(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	sub := normalized[1+len(countryCode):]
	return "+" + countryCode + " " + sub[0:3] + " " + sub[3:6] + " " + sub[6:]
}

func TelLink(raw string) (string, error) {
	normalized, err := NormalizePhone(raw)
	if err != nil {
		return "", err
	}
	return "tel:" + normalized, nil
}

// WhatsAppLink builds a wa.me click-to-chat link with an optional pre-filled message.
func WhatsAppLink(raw string, message string) (string, error) {
	normalized, err := NormalizePhone(raw)
	if err != nil {
		return "", err
	}
	link := "https://wa.me/" + strings.TrimPrefix(normalized, "+")
	if message = strings.TrimSpace(message); message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link, nil
}

// IsValidName accepts letters, spaces, apostrophes, dots and hyphens, with at least two letters.
func IsValidName(name string) bool {
	letters := 0
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ', r == '\'', r == '-', r == '.':
		default:
			return false
		}
	}
	return letters >= 2
}

func phoneDigits(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	var b strings.Builder
	for idx, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && idx == 0:
		case r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}
