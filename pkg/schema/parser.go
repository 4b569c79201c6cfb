package schema

import (
	"fmt"
	"net/url"
	"strings"
)

// Pair is a single ordered key/value entry from the originating query string.
type Pair struct {
	Key   string
	Value string
}

// LoadError reports malformed schema input. Callers surface it as a
// "form failed to load" condition and keep the form empty; it never reaches
// the user as a panic.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema: %s: %v", e.Reason, e.Err)
	}
	return "schema: " + e.Reason
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseOption customises schema construction.
type ParseOption func(*parseConfig)

type parseConfig struct {
	required map[string]bool
	optional map[string]bool
}

// WithRequired marks the given field ids required, overriding the defaults.
func WithRequired(ids ...string) ParseOption {
	return func(cfg *parseConfig) {
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			cfg.required[id] = true
			delete(cfg.optional, id)
		}
	}
}

// WithOptional marks the given field ids optional, overriding the defaults.
func WithOptional(ids ...string) ParseOption {
	return func(cfg *parseConfig) {
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			cfg.optional[id] = true
			delete(cfg.required, id)
		}
	}
}

// ParseQueryString splits a raw URL query into ordered pairs. Unlike
// url.ParseQuery it preserves the original key order, which drives field
// ordering in the resulting schema.
func ParseQueryString(raw string) ([]Pair, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, "&")
	pairs := make([]Pair, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("decode key %q", rawKey), Err: err}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, &LoadError{Reason: fmt.Sprintf("decode value for %q", key), Err: err}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// Parse builds a FormSchema plus the initial value map from ordered query
// pairs. Every declared field id is present in the returned map, empty unless
// seeded by a reserved "adress" pair. Malformed input returns a *LoadError
// and an empty schema.
func Parse(pairs []Pair, options ...ParseOption) (FormSchema, map[string]string, error) {
	cfg := &parseConfig{
		required: make(map[string]bool),
		optional: make(map[string]bool),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var out FormSchema
	initial := make(map[string]string)
	seen := make(map[string]struct{}, len(pairs))

	var initialCity, initialStreet string
	var haveAddress bool

	for _, pair := range pairs {
		key := strings.TrimSpace(pair.Key)
		if key == "" {
			return FormSchema{}, nil, &LoadError{Reason: "empty field key"}
		}

		switch key {
		case KeyHeader:
			out.Title = SanitizeLabel(pair.Value)
			continue
		case KeyAddress:
			city, street, ok := DecomposeAddress(pair.Value)
			if ok {
				initialCity, initialStreet = city, street
				haveAddress = true
			}
			continue
		}

		if _, dup := seen[key]; dup {
			return FormSchema{}, nil, &LoadError{Reason: fmt.Sprintf("duplicate field %q", key)}
		}
		seen[key] = struct{}{}

		label, choices := splitFieldValue(pair.Value)
		spec := FieldSpec{
			ID:       key,
			Label:    SanitizeLabel(label),
			Kind:     kindForKey(key),
			Required: requiredByDefault(key),
			Choices:  choices,
		}
		// An explicit option list always wins over the key-derived kind.
		if len(choices) > 0 {
			spec.Kind = KindFixedChoice
		}
		if cfg.required[key] {
			spec.Required = true
		}
		if cfg.optional[key] {
			spec.Required = false
		}

		out.Fields = append(out.Fields, spec)
		initial[key] = ""
	}

	if haveAddress {
		if _, ok := initial[FieldCity]; ok {
			initial[FieldCity] = initialCity
		}
		if _, ok := initial[FieldStreet]; ok {
			initial[FieldStreet] = initialStreet
		}
	}

	return out, initial, nil
}

// splitFieldValue interprets the "label[|opt1 opt2 ...]" value grammar.
func splitFieldValue(raw string) (string, []string) {
	label, opts, ok := strings.Cut(raw, "|")
	label = strings.TrimSpace(label)
	if !ok {
		return label, nil
	}
	choices := strings.Fields(opts)
	if len(choices) == 0 {
		return label, nil
	}
	return label, choices
}

func kindForKey(key string) FieldKind {
	switch key {
	case FieldCity:
		return KindCity
	case FieldStreet:
		return KindStreet
	case FieldDistrict:
		return KindDistrict
	case FieldPhone:
		return KindPhone
	case FieldPrice:
		return KindPrice
	default:
		return KindFreeText
	}
}

func requiredByDefault(key string) bool {
	switch key {
	case FieldCity, FieldStreet, FieldPhone, FieldPrice:
		return true
	default:
		return false
	}
}
