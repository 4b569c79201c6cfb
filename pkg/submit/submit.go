package submit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/goliatone/go-formflow/pkg/schema"
)

// Outcome is the discriminated result of a submission attempt. A failed
// attempt is never fatal: the caller keeps the form state and re-enables
// editing with RetryMessage.
type Outcome struct {
	Delivered bool
	Transport string
	Err       error
}

// RetryMessage is the generic user-facing condition for any transport or
// serialization failure.
const RetryMessage = "Произошла ошибка при отправке. Попробуйте еще раз."

// PayloadOptions shape the flat record built from final form values.
type PayloadOptions struct {
	// BackfillDistrict substitutes NotSpecified for an empty district field
	// instead of omitting it, the per-deployment alternative to rejecting an
	// unset district at validation time.
	BackfillDistrict bool
	// NotSpecified is the placeholder used when backfilling.
	NotSpecified string
}

// Payload reduces form values to a flat string-keyed record: empty optional
// fields are omitted, required fields are always present, and no key outside
// the schema is emitted.
func Payload(formSchema schema.FormSchema, values map[string]string, opts PayloadOptions) map[string]string {
	out := make(map[string]string, formSchema.Len())
	for _, field := range formSchema.Fields {
		value := strings.TrimSpace(values[field.ID])
		if value == "" {
			if field.ID == schema.FieldDistrict && opts.BackfillDistrict {
				out[field.ID] = opts.NotSpecified
				continue
			}
			if field.Required {
				out[field.ID] = ""
			}
			continue
		}
		out[field.ID] = value
	}
	return out
}

// Adapter serializes payloads and dispatches them through a transport.
type Adapter struct {
	transport Transport
}

// NewAdapter wires an adapter to its transport.
func NewAdapter(transport Transport) (*Adapter, error) {
	if transport == nil {
		return nil, errors.New("submit: transport is required")
	}
	return &Adapter{transport: transport}, nil
}

// Submit serializes the record to JSON and attempts delivery. Every failure
// is caught into the Outcome; nothing panics and nothing is retried
// automatically.
func (a *Adapter) Submit(ctx context.Context, payload map[string]string) Outcome {
	if a == nil || a.transport == nil {
		return Outcome{Err: errors.New("submit: adapter has no transport")}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Transport: a.transport.Name(), Err: err}
	}
	if err := a.transport.Send(ctx, data); err != nil {
		return Outcome{Transport: a.transport.Name(), Err: err}
	}
	return Outcome{Delivered: true, Transport: a.transport.Name()}
}
