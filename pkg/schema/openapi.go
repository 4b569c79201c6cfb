package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI builds a FormSchema from the JSON request body of a single
// OpenAPI operation. It is an alternative schema source for deployments that
// publish their listing forms as an OpenAPI document instead of encoding them
// in the launch query string. Structured kinds are inferred from property
// names and formats the same way the query parser infers them from keys.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (FormSchema, error) {
	if len(data) == 0 {
		return FormSchema{}, errors.New("schema: openapi document is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return FormSchema{}, errors.New("schema: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return FormSchema{}, fmt.Errorf("schema: load openapi document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return FormSchema{}, errors.New("schema: openapi document has no paths")
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return FormSchema{}, fmt.Errorf("schema: operation %q not found", operationID)
	}

	body := requestBodySchema(operation)
	if body == nil {
		return FormSchema{}, fmt.Errorf("schema: operation %q has no JSON request body", operationID)
	}

	out := FormSchema{Title: SanitizeLabel(operation.Summary)}

	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, required := requiredSet[name]
		out.Fields = append(out.Fields, fieldFromProperty(name, ref.Value, required))
	}

	if len(out.Fields) == 0 {
		return FormSchema{}, fmt.Errorf("schema: operation %q declares no usable properties", operationID)
	}
	return out, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestBodySchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	mt, ok := operation.RequestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil || mt.Schema.Value == nil {
		return nil
	}
	return mt.Schema.Value
}

func fieldFromProperty(name string, prop *openapi3.Schema, required bool) FieldSpec {
	spec := FieldSpec{
		ID:       name,
		Label:    SanitizeLabel(propertyLabel(name, prop)),
		Kind:     kindForKey(name),
		Required: required,
	}

	switch strings.ToLower(prop.Format) {
	case "tel", "phone":
		spec.Kind = KindPhone
	}

	if len(prop.Enum) > 0 {
		choices := make([]string, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			if str, ok := value.(string); ok && str != "" {
				choices = append(choices, str)
			}
		}
		if len(choices) > 0 {
			spec.Kind = KindFixedChoice
			spec.Choices = choices
		}
	}

	return spec
}

func propertyLabel(name string, prop *openapi3.Schema) string {
	if title := strings.TrimSpace(prop.Title); title != "" {
		return title
	}
	if desc := strings.TrimSpace(prop.Description); desc != "" {
		return desc
	}
	return name
}
