package contactform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-scales-backend/pkg/contactform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValid(f *contactform.Form) {
	f.Set("fullName", "Jane Doe")
	f.Set("email", "jane@example.com")
	f.Set("message", "I need a quote for a 500kg scale")
}

func TestSubmit_SuccessClearsForm(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"message":"Your message has been sent successfully!"}`))
	}))
	defer srv.Close()

	f := contactform.New(srv.URL, srv.Client())
	fillValid(f)
	f.Set("phone", "+911234567890")

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, "Jane Doe", received["fullName"])
	assert.Equal(t, "+911234567890", received["phone"])

	// Success resets every field and clears the error map
	assert.Empty(t, f.Value("fullName"))
	assert.Empty(t, f.Value("email"))
	assert.Empty(t, f.Value("message"))
	assert.Empty(t, f.FieldErrors())
	assert.Equal(t, contactform.StatusSuccess, f.Status())
}

func TestSubmit_ServerRejectionIsAuthoritative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		// The server enforces a max name length the local checks do not
		_, _ = w.Write([]byte(`{"error":"Validation failed","details":[{"field":"fullName","reason":"Name is too long"}]}`))
	}))
	defer srv.Close()

	f := contactform.New(srv.URL, srv.Client())
	fillValid(f)

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, contactform.ErrRejected)

	// Entered values survive, and the server's violation is adopted even
	// though the local check passed for that field
	assert.Equal(t, "Jane Doe", f.Value("fullName"))
	assert.Equal(t, "Name is too long", f.FieldError("fullName"))
	assert.Equal(t, contactform.StatusError, f.Status())
}

func TestSubmit_ServerFailureKeepsValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to send message. Please try again later."}`))
	}))
	defer srv.Close()

	f := contactform.New(srv.URL, srv.Client())
	fillValid(f)

	err := f.Submit(context.Background())
	assert.Error(t, err)

	assert.Equal(t, "Jane Doe", f.Value("fullName"))
	assert.Equal(t, "jane@example.com", f.Value("email"))
	assert.Equal(t, contactform.StatusError, f.Status())
	assert.NotEmpty(t, f.StatusMessage())
}

func TestSubmit_LocalValidationBlocksRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	f := contactform.New(srv.URL, srv.Client())
	f.Set("fullName", "Jane Doe")
	f.Set("email", "not-an-email")

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, contactform.ErrLocalValidation)

	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, "Invalid email address", f.FieldError("email"))
	assert.Equal(t, "Message is required", f.FieldError("message"))
}

func TestSubmit_RefusesWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	f := contactform.New(srv.URL, srv.Client())
	fillValid(f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	require.Eventually(t, f.Submitting, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, f.Submit(context.Background()), contactform.ErrInFlight)

	close(release)
	require.NoError(t, <-done)
}
