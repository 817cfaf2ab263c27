package picker

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"timepick/internal/domain"
	"timepick/internal/input"
	"timepick/internal/timestate"
)

// Formatter renders a time value for the host.
type Formatter interface {
	Format(v domain.TimeValue) string
}

// Picker binds a TimeState to session persistence, keyboard and text input,
// and a formatter.
type Picker struct {
	state  *timestate.State
	store  domain.TimeStore
	format Formatter
	logger *slog.Logger

	keys *input.KeyHandler
	text *input.TextHandler

	restored bool
	err      error
}

// New mounts a picker. The initial value is loaded from store; when the
// session has none, or loading fails, it is the current time of clock.
func New(
	ctx context.Context,
	store domain.TimeStore,
	clock clockwork.Clock,
	format Formatter,
	logger *slog.Logger,
) *Picker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	initial, ok, err := store.Load(ctx)
	switch {
	case err != nil:
		logger.Warn("Failed to restore time, using current time", "error", err)
		initial = domain.TimeValueOf(clock.Now())
	case !ok:
		initial = domain.TimeValueOf(clock.Now())
		logger.Debug("No stored time in session, using current time", "value", initial.String())
	default:
		logger.Debug("Restored time from session", "value", initial.String())
	}

	state := timestate.New(initial)
	p := &Picker{
		state:    state,
		store:    store,
		format:   format,
		logger:   logger,
		keys:     input.NewKeyHandler(state),
		text:     input.NewTextHandler(state),
		restored: ok && err == nil,
	}
	state.Subscribe(p.save)
	return p
}

// save runs after every committed change.
func (p *Picker) save(v domain.TimeValue) {
	if err := p.store.Save(context.Background(), v); err != nil {
		p.err = err
		p.logger.Warn("Failed to save time to session", "value", v.String(), "error", err)
		return
	}
	p.err = nil
	p.logger.Debug("Saved time to session", "value", v.String())
}

// Value returns the current time value.
func (p *Picker) Value() domain.TimeValue { return p.state.Value() }

// State exposes the underlying counters.
func (p *Picker) State() domain.TimeState { return p.state }

// Restored reports whether the initial value came from session storage.
func (p *Picker) Restored() bool { return p.restored }

// FormatTime renders the current value.
func (p *Picker) FormatTime() string { return p.format.Format(p.state.Value()) }

// Display returns the zero-padded display value of field.
func (p *Picker) Display(field domain.Field) string {
	return input.Display(p.state.Value(), field)
}

// HandleKey applies a key press on field; see input.KeyHandler.
func (p *Picker) HandleKey(field domain.Field, key domain.Key) bool {
	return p.keys.HandleKey(field, key)
}

// HandleText applies typed text to field; see input.TextHandler.
func (p *Picker) HandleText(field domain.Field, text string) bool {
	committed := p.text.HandleText(field, text)
	if !committed {
		p.logger.Debug("Ignored field input", "field", field.String(), "text", text)
	}
	return committed
}

// OnUpdate registers the host's update callback. It runs after the value has
// been committed and saved.
func (p *Picker) OnUpdate(fn domain.TimeObserver) (unsubscribe func()) {
	return p.state.Subscribe(fn)
}

// Err returns the error of the most recent save, or nil if it succeeded.
func (p *Picker) Err() error { return p.err }

// Reset clears the stored value; the in-memory value is left as is.
func (p *Picker) Reset(ctx context.Context) error {
	return p.store.Clear(ctx)
}
