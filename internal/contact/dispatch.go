package contact

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddFunc receives each accepted contact. Ownership of c passes to the callee.
type AddFunc func(c Contact)

// ErrNoAddFunc is returned by Submit when the dispatcher has no AddFunc.
var ErrNoAddFunc = errors.New("contact: no add func configured")

// Dispatcher validates a form submission and hands the resulting contact
// to its AddFunc.
type Dispatcher struct {
	add    AddFunc
	newID  func() string
	notify func(message string)
	log    *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithIDFunc sets the identifier source. Defaults to uuid.NewString.
func WithIDFunc(fn func() string) Option {
	return func(d *Dispatcher) {
		d.newID = fn
	}
}

// WithNotifier sets the sink for user-facing rejection messages.
// It is only called for rejections that carry a message.
func WithNotifier(fn func(message string)) Option {
	return func(d *Dispatcher) {
		d.notify = fn
	}
}

// WithLogger sets the logger used to record submission outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// NewDispatcher creates a Dispatcher that passes accepted contacts to add.
func NewDispatcher(add AddFunc, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		add:   add,
		newID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit validates f against existing and, if accepted, builds a contact
// with a fresh ID and trimmed fields, passes it to the AddFunc, and resets f.
// On rejection f is left untouched, the message (if any) goes to the
// notifier, and the rejection is returned.
//
// Format rules are checked after the collection rules so that a caller
// bypassing the form's own format checks is still rejected.
func (d *Dispatcher) Submit(f *FormState, existing []Contact) (Contact, error) {
	if d.add == nil {
		return Contact{}, ErrNoAddFunc
	}

	err := Validate(*f, existing)
	if err == nil {
		err = CheckFormat(*f)
	}
	if err != nil {
		d.reject(err)
		return Contact{}, err
	}

	t := f.Trimmed()
	c := Contact{
		ID:     d.newID(),
		Name:   t.Name,
		Number: t.Number,
	}
	d.add(c)
	f.Reset()

	d.log.Debug("contact added", zap.String("id", c.ID))
	return c, nil
}

func (d *Dispatcher) reject(err error) {
	msg := Message(err)
	d.log.Debug("contact rejected", zap.Error(errors.Unwrap(err)))
	if msg != "" && d.notify != nil {
		d.notify(msg)
	}
}
