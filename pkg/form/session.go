package form

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-formflow/pkg/format"
	"github.com/goliatone/go-formflow/pkg/schema"
	"github.com/goliatone/go-formflow/pkg/submit"
	"github.com/goliatone/go-formflow/pkg/suggest"
	"github.com/goliatone/go-formflow/pkg/validate"
)

// LoadFailedMessage is the user-facing condition for malformed schema input.
const LoadFailedMessage = "Не удалось загрузить форму"

var errNoTransport = errors.New("form: session has no transport")

// SessionOption customises session construction.
type SessionOption func(*Session)

// WithConfig replaces the default policy configuration.
func WithConfig(cfg Config) SessionOption {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithTransport wires the submission transport. Without one, Submit reports
// a transport error but the session stays editable.
func WithTransport(transport submit.Transport) SessionOption {
	return func(s *Session) {
		if transport == nil {
			return
		}
		adapter, err := submit.NewAdapter(transport)
		if err != nil {
			return
		}
		s.adapter = adapter
	}
}

// WithSource registers a suggestion source for a field id. Structured lookup
// fields (city, district, street) are the expected users.
func WithSource(fieldID string, source suggest.Source) SessionOption {
	return func(s *Session) {
		if fieldID == "" || source == nil {
			return
		}
		s.sources[fieldID] = source
	}
}

// WithDebouncer injects a shared debouncer, mainly for tests that need a
// short quiet period.
func WithDebouncer(debouncer *suggest.Debouncer) SessionOption {
	return func(s *Session) {
		if debouncer != nil {
			s.debouncer = debouncer
		}
	}
}

// SubmitResult discriminates the three submit outcomes: validation failure,
// transport failure, and delivery.
type SubmitResult struct {
	// Validation is the verdict; when invalid, no dispatch was attempted.
	Validation validate.Result
	// Attempted reports whether the payload reached the transport layer.
	Attempted bool
	// Outcome is the transport result when Attempted.
	Outcome submit.Outcome
}

// Session is one live form: parsed schema, cascading state, suggestion
// plumbing and the submission adapter. All methods are safe for the UI
// goroutine plus debounce timer callbacks.
type Session struct {
	ID string

	cfg       Config
	schema    schema.FormSchema
	machine   Machine
	adapter   *submit.Adapter
	sources   map[string]suggest.Source
	debouncer *suggest.Debouncer

	mu         sync.Mutex
	state      State
	loadFailed bool
}

// NewSession parses the ordered query pairs and builds a ready session.
// Malformed input never surfaces as an error: the session starts in the
// load-failed condition with an empty schema and stays interactive.
func NewSession(pairs []schema.Pair, options ...SessionOption) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		cfg:     DefaultConfig(),
		sources: make(map[string]suggest.Source),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	parseOpts := []schema.ParseOption{}
	if len(s.cfg.Required) > 0 {
		parseOpts = append(parseOpts, schema.WithRequired(s.cfg.Required...))
	}
	if len(s.cfg.Optional) > 0 {
		parseOpts = append(parseOpts, schema.WithOptional(s.cfg.Optional...))
	}

	formSchema, initial, err := schema.Parse(pairs, parseOpts...)
	if err != nil {
		s.loadFailed = true
		s.schema = schema.FormSchema{}
		s.machine = NewMachine(s.schema)
		s.state = NewState(s.schema)
		s.state.Err = LoadFailedMessage
	} else {
		s.schema = formSchema
		s.machine = NewMachine(formSchema)
		s.state = NewStateWithValues(formSchema, initial)
	}

	if s.debouncer == nil {
		s.debouncer = suggest.NewDebouncer(s.cfg.Debounce())
	}
	return s
}

// NewSessionFromQuery parses a raw query string first.
func NewSessionFromQuery(rawQuery string, options ...SessionOption) *Session {
	pairs, err := schema.ParseQueryString(rawQuery)
	if err != nil {
		s := NewSession(nil, options...)
		s.mu.Lock()
		s.loadFailed = true
		s.state.Err = LoadFailedMessage
		s.mu.Unlock()
		return s
	}
	return NewSession(pairs, options...)
}

// Schema returns the parsed schema.
func (s *Session) Schema() schema.FormSchema {
	return s.schema
}

// LoadFailed reports whether the originating query was malformed.
func (s *Session) LoadFailed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFailed
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Value returns the current value for a field id.
func (s *Session) Value(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Value(id)
}

// Message returns the currently surfaced error message, empty when none.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Err
}

// Update applies raw keyboard input to a field.
func (s *Session) Update(id, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.machine.Apply(s.state, id, raw)
}

// UpdateSuggestion applies a structured suggestion payload to a field.
func (s *Session) UpdateSuggestion(id string, payload *format.Payload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.machine.ApplySuggestion(s.state, id, payload)
}

// Suggest schedules a debounced suggestion refresh for a field and delivers
// the ranked list to fn. A lookup failure or missing source degrades to an
// empty list; it never surfaces as an error. The returned CancelFunc drops
// the pending refresh, and a newer Suggest for the same field supersedes it.
func (s *Session) Suggest(ctx context.Context, id, query string, fn func([]suggest.Match)) suggest.CancelFunc {
	if fn == nil {
		return func() {}
	}
	source, ok := s.sources[id]
	if !ok {
		return s.debouncer.Schedule(id, func() { fn(nil) })
	}

	scope := suggest.Scope{}
	if id != schema.FieldCity {
		scope.City = s.anchor()
	}

	return s.debouncer.Schedule(id, func() {
		candidates, err := source.Lookup(ctx, query, scope)
		if err != nil {
			fn(nil)
			return
		}
		fn(suggest.RankCandidates(query, candidates))
	})
}

// Validate runs the submit-time checks over the current values.
func (s *Session) Validate() validate.Result {
	s.mu.Lock()
	values := s.state.Clone().Values
	s.mu.Unlock()

	opts := []validate.Option{}
	if s.cfg.DistrictPolicy == DistrictRequireCity {
		opts = append(opts, validate.WithDistrictRequiresCity())
	}
	return validate.Check(s.schema, values, opts...)
}

// Submit validates and, on a pass, dispatches the flat payload through the
// adapter. A validation failure surfaces its message on the state; a
// transport failure surfaces the generic retry message and preserves every
// value. Delivery resets the state to empty for the next entry.
func (s *Session) Submit(ctx context.Context) SubmitResult {
	verdict := s.Validate()
	if !verdict.Valid {
		s.mu.Lock()
		s.state.Err = verdict.Message
		s.mu.Unlock()
		return SubmitResult{Validation: verdict}
	}

	s.mu.Lock()
	values := s.state.Clone().Values
	s.mu.Unlock()

	payload := submit.Payload(s.schema, values, submit.PayloadOptions{
		BackfillDistrict: s.cfg.DistrictPolicy == DistrictDefaultNotSpecified,
		NotSpecified:     s.cfg.NotSpecified,
	})

	var outcome submit.Outcome
	if s.adapter != nil {
		outcome = s.adapter.Submit(ctx, payload)
	} else {
		outcome = submit.Outcome{Err: errNoTransport}
	}

	s.mu.Lock()
	if outcome.Delivered {
		s.state = NewState(s.schema)
	} else {
		s.state.Err = submit.RetryMessage
	}
	s.mu.Unlock()

	return SubmitResult{Validation: verdict, Attempted: true, Outcome: outcome}
}

// Close cancels any pending suggestion refresh.
func (s *Session) Close() {
	s.debouncer.Stop()
}

func (s *Session) anchor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Anchor
}
