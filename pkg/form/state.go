// Package form owns the cascading form state machine and the session that
// wires schema parsing, formatting, suggestions, validation and submission
// into one pipeline.
package form

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/format"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// State is the mutable value set of one form session: field id to current
// value, the cascade anchor, and the transient error message surfaced to the
// user. Only the Machine mutates it; everything else works on copies.
type State struct {
	Values map[string]string
	// Anchor is the currently selected city scoping district/street lookups.
	Anchor string
	// Err is the last surfaced validation or submission message. Cleared on
	// every field update; never submitted.
	Err string
}

// NewState seeds a state with every schema id present and empty.
func NewState(formSchema schema.FormSchema) State {
	return NewStateWithValues(formSchema, nil)
}

// NewStateWithValues seeds a state with initial values, typically the ones a
// reserved "adress" pair decomposed into. Every schema id is present even
// when initial omits it.
func NewStateWithValues(formSchema schema.FormSchema, initial map[string]string) State {
	values := make(map[string]string, formSchema.Len())
	for _, field := range formSchema.Fields {
		values[field.ID] = initial[field.ID]
	}
	return State{
		Values: values,
		Anchor: values[schema.FieldCity],
	}
}

// Clone returns an independent copy.
func (s State) Clone() State {
	values := make(map[string]string, len(s.Values))
	for key, value := range s.Values {
		values[key] = value
	}
	return State{Values: values, Anchor: s.Anchor, Err: s.Err}
}

// Value returns the current value for a field id.
func (s State) Value(id string) string {
	return s.Values[id]
}

// Empty reports whether a field holds no usable value.
func (s State) Empty(id string) bool {
	return strings.TrimSpace(s.Values[id]) == ""
}

// Machine applies field updates to a State. Transitions are synchronous and
// total: every (id, value) pair is accepted; rejection is the validator's
// job at submit time, never during typing.
type Machine struct {
	schema schema.FormSchema
}

// NewMachine builds a machine for one parsed schema.
func NewMachine(formSchema schema.FormSchema) Machine {
	return Machine{schema: formSchema}
}

// Apply routes raw keyboard input through the formatter and returns the next
// state. A city update clears district, street and house unconditionally and
// re-anchors the cascade; a district update touches only the district. Every
// update clears the surfaced error.
func (m Machine) Apply(st State, id, raw string) State {
	kind := m.kindOf(id)
	return m.set(st, id, kind, format.Apply(kind, raw))
}

// ApplySuggestion is Apply for structured suggestion payloads.
func (m Machine) ApplySuggestion(st State, id string, payload *format.Payload) State {
	kind := m.kindOf(id)
	return m.set(st, id, kind, format.ApplyPayload(kind, payload))
}

func (m Machine) set(st State, id string, kind schema.FieldKind, value string) State {
	next := st.Clone()
	next.Err = ""
	next.Values[id] = value

	switch kind {
	case schema.KindCity:
		// District and street suggestions are always scoped to one city, so
		// a city change invalidates every dependent value, populated or not.
		clearValue(&next, schema.FieldDistrict)
		clearValue(&next, schema.FieldStreet)
		clearValue(&next, schema.FieldHouse)
		next.Anchor = value
	case schema.KindDistrict:
		// Districts and streets are independent children of the city; a
		// district change leaves the street alone.
	case schema.KindStreet, schema.KindPhone, schema.KindPrice,
		schema.KindFreeText, schema.KindFixedChoice:
	}
	return next
}

// kindOf keeps transitions total: ids outside the schema behave as free
// text and are simply stored (the validator ignores them and the submission
// payload omits them).
func (m Machine) kindOf(id string) schema.FieldKind {
	if field, ok := m.schema.Field(id); ok {
		return field.Kind
	}
	return schema.KindFreeText
}

func clearValue(st *State, id string) {
	if _, ok := st.Values[id]; ok {
		st.Values[id] = ""
	}
}
