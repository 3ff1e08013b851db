// Package dateutils normalizes statement date tokens into canonical ISO
// form (YYYY-MM-DD).
package dateutils

import (
	"regexp"
	"strings"
	"time"

	"jmoret/bankparse/internal/parsererror"
)

// DateLayoutISO is the canonical date layout used everywhere downstream.
const DateLayoutISO = "2006-01-02"

var (
	isoRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	tokenRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})`)
)

// ToISO formats a time as a canonical date string.
func ToISO(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// Normalize converts a date token in one of the recognized shapes
// (YYYY-MM-DD, YYYY/MM/DD, and slash dates with the year last) into
// canonical form. Slash dates with the year last are ambiguous; the caller
// supplies the locale hint: dayFirst false reads MM/DD/YYYY, true reads
// DD/MM/YYYY. The hint comes from configuration, never from inspecting the
// values.
func Normalize(token string, dayFirst bool) (string, error) {
	token = strings.TrimSpace(token)
	if isoRe.MatchString(token) {
		return token, nil
	}
	if strings.Contains(token, "/") {
		return normalizeSlash(token, dayFirst)
	}
	return "", &parsererror.InvalidDateError{Raw: token}
}

func normalizeSlash(token string, dayFirst bool) (string, error) {
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return "", &parsererror.InvalidDateError{Raw: token}
	}

	// A four-digit leading component means YYYY/MM/DD: only the
	// separators change.
	if len(parts[0]) == 4 {
		return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2]), nil
	}

	year := parts[2]
	if len(year) != 4 {
		return "", &parsererror.InvalidDateError{Raw: token}
	}
	month, day := parts[0], parts[1]
	if dayFirst {
		month, day = parts[1], parts[0]
	}
	return year + "-" + pad2(month) + "-" + pad2(day), nil
}

// FindToken returns the first date-like token embedded anywhere in s.
func FindToken(s string) (string, bool) {
	token := tokenRe.FindString(s)
	return token, token != ""
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
