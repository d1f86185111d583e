// Package contactform is a programmatic client for the contact submission
// endpoint. It keeps the same state a browser form would: current field
// values, per-field errors, an in-flight flag, and a terminal
// success/error indicator.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sync"
)

// Status reports the outcome of the last submit attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

var (
	// ErrInFlight means a submission is already running; re-submission is
	// disabled until it finishes.
	ErrInFlight = errors.New("contactform: submission already in flight")
	// ErrLocalValidation means the quick local checks rejected the form
	// before any request was made.
	ErrLocalValidation = errors.New("contactform: local validation failed")
	// ErrRejected means the server rejected the submission; the error map
	// holds the authoritative field violations.
	ErrRejected = errors.New("contactform: submission rejected by server")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form owns field values and error state and drives the network call.
// The local checks are deliberately a subset of the server's rules
// (required fields and the email pattern only); the server is the sole
// authority and its reported violations replace local judgement.
type Form struct {
	endpoint string
	client   *http.Client

	mu         sync.Mutex
	values     map[string]string
	fieldErrs  map[string]string
	submitting bool
	status     Status
	statusMsg  string
}

// New creates a form bound to the submission endpoint URL. A nil client
// falls back to http.DefaultClient.
func New(endpoint string, client *http.Client) *Form {
	if client == nil {
		client = http.DefaultClient
	}
	return &Form{
		endpoint:  endpoint,
		client:    client,
		values:    make(map[string]string),
		fieldErrs: make(map[string]string),
	}
}

// Set records the current value of a field, keyed by its wire name
// (fullName, email, phone, message, companyName, location,
// productCategory, capacityRequirement).
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// FieldError returns the current error message for a field, if any.
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs[field]
}

// FieldErrors returns a copy of the full field error map.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

// Status returns the outcome of the last submit attempt.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// StatusMessage returns the user-facing message for the current status.
func (f *Form) StatusMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusMsg
}

// Submitting reports whether a submission is currently in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// localValidate mirrors the required-field checks for instant feedback.
// Caller holds the lock.
func (f *Form) localValidate() bool {
	f.fieldErrs = make(map[string]string)

	if f.values["fullName"] == "" {
		f.fieldErrs["fullName"] = "Full name is required"
	}
	switch {
	case f.values["email"] == "":
		f.fieldErrs["email"] = "Email is required"
	case !emailPattern.MatchString(f.values["email"]):
		f.fieldErrs["email"] = "Invalid email address"
	}
	if f.values["message"] == "" {
		f.fieldErrs["message"] = "Message is required"
	}

	return len(f.fieldErrs) == 0
}

type serverSuccess struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type serverError struct {
	Error   string `json:"error"`
	Details []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"details"`
}

// Submit runs the local checks and, only if they pass, posts the form.
// While the request is in flight further submits are refused. On success
// all fields and errors are cleared; on any failure the entered values
// are preserved so the user does not have to retype.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	if !f.localValidate() {
		f.status = StatusError
		f.statusMsg = "Please correct the highlighted fields."
		f.mu.Unlock()
		return ErrLocalValidation
	}
	f.submitting = true
	payload := make(map[string]string)
	for field, value := range f.values {
		if value != "" {
			payload[field] = value
		}
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		f.fail("Something went wrong. Please try again later.")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		f.fail("Something went wrong. Please try again later.")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.fail("Could not reach the server. Please try again later.")
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var ok serverSuccess
		_ = json.NewDecoder(resp.Body).Decode(&ok)
		msg := ok.Message
		if msg == "" {
			msg = "Your message has been sent successfully!"
		}
		f.mu.Lock()
		f.values = make(map[string]string)
		f.fieldErrs = make(map[string]string)
		f.status = StatusSuccess
		f.statusMsg = msg
		f.mu.Unlock()
		return nil

	case resp.StatusCode == http.StatusBadRequest:
		var rejected serverError
		_ = json.NewDecoder(resp.Body).Decode(&rejected)
		f.mu.Lock()
		// Server violations are authoritative, including rules the local
		// checks do not cover (e.g. maximum lengths).
		for _, d := range rejected.Details {
			f.fieldErrs[d.Field] = d.Reason
		}
		f.status = StatusError
		f.statusMsg = "Please correct the highlighted fields."
		f.mu.Unlock()
		return ErrRejected

	default:
		f.fail("Failed to send message. Please try again later.")
		return fmt.Errorf("contactform: unexpected status %d", resp.StatusCode)
	}
}

func (f *Form) fail(msg string) {
	f.mu.Lock()
	f.status = StatusError
	f.statusMsg = msg
	f.mu.Unlock()
}
