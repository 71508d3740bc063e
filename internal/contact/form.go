// Package contact implements the contact form: its status machine, the sender it
// submits to, and duplicate suppression for the HTTP endpoint.
package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	DefaultSendDelay  = 2 * time.Second
	DefaultResetAfter = 5 * time.Second
)

var (
	ErrIncomplete = errors.New("name, email and message are required")
	ErrSubmitting = errors.New("a submission is already in progress")
	ErrClosed     = errors.New("form is closed")
)

// Fields are the three text inputs of the form.
type Fields struct {
	Name    string
	Email   string
	Message string
}

func (f Fields) complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Message) != ""
}

// Message is what a Sender receives.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ReceivedAt time.Time
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Form holds the transient state of one contact form.
//
// Transitions: idle -> submitting -> success (fields cleared) -> idle after
// resetAfter. A sender failure goes to error with the fields kept, and also
// returns to idle after resetAfter.
type Form struct {
	sender     Sender
	resetAfter time.Duration
	onChange   func(Status)

	mu     sync.Mutex
	status Status
	fields Fields
	timer  *time.Timer
	closed bool
}

type Option func(*Form)

// WithResetAfter sets how long success or error is shown before going idle.
func WithResetAfter(d time.Duration) Option {
	return func(f *Form) { f.resetAfter = d }
}

// WithObserver registers a callback invoked on every status change. It runs
// outside the form lock.
func WithObserver(fn func(Status)) Option {
	return func(f *Form) { f.onChange = fn }
}

func NewForm(sender Sender, opts ...Option) *Form {
	f := &Form{
		sender:     sender,
		resetAfter: DefaultResetAfter,
		status:     StatusIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Set replaces the field values. Ignored while a submission is in flight.
func (f *Form) Set(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return
	}
	f.fields = fields
}

// Submit sends the current fields and blocks until the sender returns. The
// returned Message carries the generated id.
func (f *Form) Submit(ctx context.Context) (Message, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return Message{}, ErrClosed
	}
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return Message{}, ErrSubmitting
	}
	if !f.fields.complete() {
		f.mu.Unlock()
		return Message{}, ErrIncomplete
	}
	f.stopTimerLocked()
	msg := Message{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(f.fields.Name),
		Email:      strings.TrimSpace(f.fields.Email),
		Body:       strings.TrimSpace(f.fields.Message),
		ReceivedAt: time.Now().UTC(),
	}
	f.status = StatusSubmitting
	f.mu.Unlock()
	f.notify(StatusSubmitting)

	err := f.sender.Send(ctx, msg)

	f.mu.Lock()
	next := StatusSuccess
	if err != nil {
		next = StatusError
	} else {
		f.fields = Fields{}
	}
	f.status = next
	if !f.closed {
		f.timer = time.AfterFunc(f.resetAfter, f.reset)
	}
	f.mu.Unlock()
	f.notify(next)

	return msg, err
}

func (f *Form) reset() {
	f.mu.Lock()
	if f.status != StatusSuccess && f.status != StatusError {
		f.mu.Unlock()
		return
	}
	f.status = StatusIdle
	f.timer = nil
	f.mu.Unlock()
	f.notify(StatusIdle)
}

// Close stops a pending reset. The form keeps its last status.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.stopTimerLocked()
}

func (f *Form) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) notify(s Status) {
	if f.onChange != nil {
		f.onChange(s)
	}
}
