package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DecomposeAddress splits a composite "city, street[, house]" display string
// into its city and street parts. Each segment may carry a leading address
// marker abbreviation ("г Москва", "ул Тверская", "д 1"); markers are
// stripped before use. A third segment is treated as the house number and
// appended to the street after a comma. ok is false when fewer than two
// usable segments remain.
func DecomposeAddress(raw string) (city, street string, ok bool) {
	segments := strings.Split(raw, ",")
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		segment = stripMarker(segment)
		if segment == "" {
			continue
		}
		parts = append(parts, segment)
	}
	if len(parts) < 2 {
		return "", "", false
	}
	city = parts[0]
	street = parts[1]
	if len(parts) > 2 {
		street = street + ", " + strings.Join(parts[2:], ", ")
	}
	return city, street, true
}

// ComposeAddress joins city and street back into the comma-joined display
// shape. ComposeAddress is the inverse of DecomposeAddress for two-segment
// addresses without markers.
func ComposeAddress(city, street string) string {
	return city + ", " + street
}

// stripMarker trims a segment and removes a leading abbreviation token such
// as "г", "ул" or "д.". A token counts as a marker when it is at most three
// letters (ignoring a trailing dot) and is followed by more text.
func stripMarker(segment string) string {
	segment = strings.TrimSpace(segment)
	head, rest, found := strings.Cut(segment, " ")
	if !found {
		return segment
	}
	if isMarker(head) {
		return strings.TrimSpace(rest)
	}
	return segment
}

func isMarker(token string) bool {
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return false
	}
	if utf8.RuneCountInString(token) > 3 {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}
