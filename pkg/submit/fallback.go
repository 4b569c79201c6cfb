package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/flosch/pongo2/v6"
)

// summaryTemplate renders the payload as sorted "key: value" lines, the
// shape the product shows when no host bridge is present.
const summaryTemplate = `{% for entry in entries %}{{ entry.Key }}: {{ entry.Value }}
{% endfor %}`

type summaryEntry struct {
	Key   string
	Value string
}

type fallbackTransport struct {
	out      io.Writer
	template *pongo2.Template
}

// NewFallbackTransport builds the "no transport available" path: the payload
// is rendered as a human-readable summary to out, and delivery is reported
// as success so manual test sessions behave like real ones.
func NewFallbackTransport(out io.Writer) (Transport, error) {
	if out == nil {
		return nil, fmt.Errorf("submit: fallback writer is required")
	}
	template, err := pongo2.FromString(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("submit: parse summary template: %w", err)
	}
	return &fallbackTransport{out: out, template: template}, nil
}

func (t *fallbackTransport) Name() string { return "fallback" }

func (t *fallbackTransport) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var payload map[string]string
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("submit: decode payload for summary: %w", err)
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]summaryEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, summaryEntry{Key: key, Value: payload[key]})
	}

	rendered, err := t.template.Execute(pongo2.Context{"entries": entries})
	if err != nil {
		return fmt.Errorf("submit: render summary: %w", err)
	}
	if _, err := io.WriteString(t.out, rendered); err != nil {
		return fmt.Errorf("submit: write summary: %w", err)
	}
	return nil
}
