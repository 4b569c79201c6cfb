// Package formflow exposes the form-session pipeline at the module root so
// callers can construct a working session with a single import. The
// underlying packages remain importable for advanced wiring.
package formflow

import (
	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/submit"
	"github.com/goliatone/go-formflow/pkg/suggest"
)

// Session is the live form pipeline: schema, cascading state, suggestions,
// validation and submission.
type Session = form.Session

// SessionOption customises session construction.
type SessionOption = form.SessionOption

// Config carries per-deployment form policy.
type Config = form.Config

// New parses ordered query pairs into a ready session.
func New(pairs []schema.Pair, options ...SessionOption) *Session {
	return form.NewSession(pairs, options...)
}

// NewFromQuery parses a raw launch query string into a ready session.
func NewFromQuery(rawQuery string, options ...SessionOption) *Session {
	return form.NewSessionFromQuery(rawQuery, options...)
}

// DefaultConfig mirrors the observed product defaults.
func DefaultConfig() Config {
	return form.DefaultConfig()
}

// WithConfig replaces the default policy configuration.
func WithConfig(cfg Config) SessionOption {
	return form.WithConfig(cfg)
}

// WithTransport wires the submission transport.
func WithTransport(transport submit.Transport) SessionOption {
	return form.WithTransport(transport)
}

// WithSource registers a suggestion source for a field id.
func WithSource(fieldID string, source suggest.Source) SessionOption {
	return form.WithSource(fieldID, source)
}
