package compose

import (
	"strings"
	"unicode/utf8"
)

// ResolveItemText decides what a line item displays as its title line and
// what flows below it as body text. Rules, in priority order:
//
//  1. Title and a distinct description: both are kept.
//  2. Title with an empty or duplicate description: title only.
//  3. No title, short description (<= shortLimit runes): the description
//     is promoted to the title line.
//  4. No title, long description: body only.
//  5. Both empty: nothing.
//
// Title/description equality is case-insensitive so legacy records that
// copied the title into the description don't render it twice.
func ResolveItemText(title, description string, shortLimit int) (displayTitle, body string) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	switch {
	case title != "" && description != "" && !strings.EqualFold(title, description):
		return title, description
	case title != "":
		return title, ""
	case description == "":
		return "", ""
	case utf8.RuneCountInString(description) <= shortLimit:
		return description, ""
	default:
		return "", description
	}
}

// combinedSeparators are tried in order when recovering a title/body pair
// from a legacy single-field record.
var combinedSeparators = []string{" – ", " - "}

// ResolveCombined handles historical records that carried a single free
// text field. A leading fragment before " – " or " - " becomes the title
// when it is short enough to be one; otherwise the whole string falls back
// to the same short-is-title rule as ResolveItemText.
//
// New records should carry explicit fields and skip this heuristic.
func ResolveCombined(combined string, shortLimit int) (displayTitle, body string) {
	s := strings.TrimSpace(combined)
	if s == "" {
		return "", ""
	}
	for _, sep := range combinedSeparators {
		head, tail, ok := strings.Cut(s, sep)
		if !ok {
			continue
		}
		head = strings.TrimSpace(head)
		tail = strings.TrimSpace(tail)
		if head != "" && utf8.RuneCountInString(head) <= shortLimit {
			return ResolveItemText(head, tail, shortLimit)
		}
	}
	if utf8.RuneCountInString(s) <= shortLimit {
		return s, ""
	}
	return "", s
}
