package schema

// FieldKind is the closed enumeration of form field kinds. Downstream
// formatters and validators dispatch on it with exhaustive switches so an
// unknown kind is a visible bug rather than a silently skipped string.
type FieldKind string

const (
	KindFreeText    FieldKind = "free_text"
	KindPhone       FieldKind = "phone"
	KindPrice       FieldKind = "price"
	KindCity        FieldKind = "city"
	KindStreet      FieldKind = "street"
	KindDistrict    FieldKind = "district"
	KindFixedChoice FieldKind = "fixed_choice"
)

// Well-known field identifiers. The cascade rules and required-by-default set
// key off these ids; everything else is schema-driven.
const (
	FieldCity     = "city"
	FieldStreet   = "street"
	FieldDistrict = "district"
	FieldHouse    = "house"
	FieldPhone    = "number_phone"
	FieldPrice    = "price"
)

// Reserved query keys that configure the form instead of declaring a field.
const (
	KeyHeader  = "header"
	KeyAddress = "adress"
)

// FieldSpec describes a single input inside a parsed form. Specs are built
// once per form instantiation and never mutated afterwards.
type FieldSpec struct {
	ID       string
	Label    string
	Required bool
	Kind     FieldKind
	// Choices holds the fixed option list when Kind is KindFixedChoice.
	Choices []string
}

// FormSchema is an ordered sequence of field specs with unique ids. Order is
// preserved from the originating query and drives both rendering order and
// validation order.
type FormSchema struct {
	Title  string
	Fields []FieldSpec
}

// Field looks up a spec by id.
func (s FormSchema) Field(id string) (FieldSpec, bool) {
	for _, field := range s.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Has reports whether the schema declares the given field id.
func (s FormSchema) Has(id string) bool {
	_, ok := s.Field(id)
	return ok
}

// IDs returns the field identifiers in schema order.
func (s FormSchema) IDs() []string {
	if len(s.Fields) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.Fields))
	for _, field := range s.Fields {
		ids = append(ids, field.ID)
	}
	return ids
}

// Len returns the number of declared fields.
func (s FormSchema) Len() int {
	return len(s.Fields)
}

// Empty reports whether the schema declares no fields at all, the state a
// form is left in after a load failure.
func (s FormSchema) Empty() bool {
	return len(s.Fields) == 0
}
