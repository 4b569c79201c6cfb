// Package format normalizes raw field input into canonical stored values.
// Every transformation is pure and synchronous; the cascading state machine
// is the only caller that persists the results.
package format

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Apply normalizes raw keyboard input for a field kind. Phone input is run
// through the incremental mask, price keeps digits only, everything else is
// a trimmed passthrough.
func Apply(kind schema.FieldKind, raw string) string {
	switch kind {
	case schema.KindPhone:
		return Phone(raw)
	case schema.KindPrice:
		return Price(raw)
	case schema.KindCity, schema.KindStreet, schema.KindDistrict,
		schema.KindFreeText, schema.KindFixedChoice:
		return strings.TrimSpace(raw)
	default:
		return strings.TrimSpace(raw)
	}
}

// ApplyPayload normalizes a structured suggestion payload for a field kind.
// Only the structured kinds consult the typed sub-fields; for everything
// else the generic display value is used.
func ApplyPayload(kind schema.FieldKind, payload *Payload) string {
	if payload == nil {
		return ""
	}
	switch kind {
	case schema.KindStreet:
		return payload.StreetDisplay()
	case schema.KindDistrict:
		return payload.DistrictDisplay()
	case schema.KindCity:
		return payload.Display()
	default:
		return payload.Display()
	}
}

// Price keeps the digits of raw input. Values without any digit collapse to
// the empty string, which downstream treats as "unset" rather than zero.
func Price(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
