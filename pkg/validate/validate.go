// Package validate computes a single submit-time verdict over a form's
// current values. Checks run in schema order and the first failure wins;
// there is deliberately no aggregation of every error, matching the product
// behavior the engine replaces.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formflow/pkg/format"
	"github.com/goliatone/go-formflow/pkg/schema"
)

// Result is the verdict for one validation pass. It is recomputed from
// scratch on every call and never cached across a value change.
type Result struct {
	Valid        bool
	FailingField string
	Message      string
}

// Option customises a validation pass.
type Option func(*config)

type config struct {
	requireCityForDistrict bool
	compositeAddressFields map[string]struct{}
	compositeDistrictField string
}

// WithDistrictRequiresCity enables the cross-field rule that a non-empty
// district must have a city set. Deployments that backfill an unset district
// at submit time leave this off.
func WithDistrictRequiresCity() Option {
	return func(cfg *config) {
		cfg.requireCityForDistrict = true
	}
}

// WithCompositeAddressField marks a field whose value is a single
// comma-joined "city, street, house" string; it must split into exactly
// three non-empty segments.
func WithCompositeAddressField(ids ...string) Option {
	return func(cfg *config) {
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			cfg.compositeAddressFields[id] = struct{}{}
		}
	}
}

// WithCompositeDistrictField marks a field whose value is a comma-joined
// "city, district" pair; it must split into exactly two non-empty segments.
func WithCompositeDistrictField(id string) Option {
	return func(cfg *config) {
		cfg.compositeDistrictField = strings.TrimSpace(id)
	}
}

// Check validates values against the schema. Required fields are checked
// first in schema order, then per-kind rules for non-empty values, then
// cross-field rules. Optional fields with empty values always pass their
// type check.
func Check(formSchema schema.FormSchema, values map[string]string, options ...Option) Result {
	cfg := &config{
		compositeAddressFields: make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	for _, field := range formSchema.Fields {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(values[field.ID]) == "" {
			return fail(field.ID, fmt.Sprintf("не заполнено поле «%s»", fieldName(field)))
		}
	}

	// Type-specific rules run rule-major: every phone check before any price
	// check, and composites last. Within a rule, schema order decides.
	for _, field := range formSchema.Fields {
		value := strings.TrimSpace(values[field.ID])
		if value == "" || field.Kind != schema.KindPhone {
			continue
		}
		if !format.PhoneComplete(value) {
			return fail(field.ID, fmt.Sprintf("поле «%s» заполнено не полностью", fieldName(field)))
		}
	}

	for _, field := range formSchema.Fields {
		value := strings.TrimSpace(values[field.ID])
		if value == "" || field.Kind != schema.KindPrice {
			continue
		}
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price <= 0 {
			return fail(field.ID, fmt.Sprintf("поле «%s» должно быть числом больше нуля", fieldName(field)))
		}
	}

	for _, field := range formSchema.Fields {
		value := strings.TrimSpace(values[field.ID])
		if value == "" {
			continue
		}
		if _, composite := cfg.compositeAddressFields[field.ID]; composite && countSegments(value) != 3 {
			return fail(field.ID, fmt.Sprintf("поле «%s» должно содержать город, улицу и дом через запятую", fieldName(field)))
		}
		if cfg.compositeDistrictField != "" && field.ID == cfg.compositeDistrictField && countSegments(value) != 2 {
			return fail(field.ID, fmt.Sprintf("поле «%s» должно содержать город и район через запятую", fieldName(field)))
		}
	}

	if cfg.requireCityForDistrict {
		district := strings.TrimSpace(values[schema.FieldDistrict])
		city := strings.TrimSpace(values[schema.FieldCity])
		if district != "" && city == "" {
			return fail(schema.FieldDistrict, "район нельзя указать без города")
		}
	}

	return Result{Valid: true}
}

func countSegments(value string) int {
	segments := strings.Split(value, ",")
	count := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

func fieldName(field schema.FieldSpec) string {
	if strings.TrimSpace(field.Label) != "" {
		return field.Label
	}
	return field.ID
}

func fail(id, message string) Result {
	return Result{FailingField: id, Message: message}
}
