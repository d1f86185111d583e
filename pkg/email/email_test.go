package email

import (
	"context"
	"testing"
	"time"

	"go-scales-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Host:      "smtp.example.com",
		Port:      "587",
		Username:  "user@example.com",
		Password:  "secret",
		FromEmail: "noreply@example.com",
		ToEmail:   "sales@example.com",
	}
}

func testSubmission() *domain.Submission {
	return &domain.Submission{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "I need a quote for a 500kg scale",
	}
}

func TestNewService_MissingConfig(t *testing.T) {
	svc := NewService(Config{Port: "587"})

	err := svc.ConfigError()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "SMTP_HOST")
	assert.Contains(t, err.Error(), "CONTACT_EMAIL")

	// Every operation fails fast with the same condition
	assert.ErrorIs(t, svc.Send(context.Background(), testSubmission()), ErrNotConfigured)
	assert.ErrorIs(t, svc.Verify(context.Background()), ErrNotConfigured)
}

func TestNewService_CompleteConfig(t *testing.T) {
	svc := NewService(testConfig())
	assert.NoError(t, svc.ConfigError())
}

func TestBuildMessage_Headers(t *testing.T) {
	svc := NewService(testConfig())
	sub := testSubmission()

	msg, err := svc.buildMessage(sub)
	require.NoError(t, err)
	s := string(msg)

	assert.Contains(t, s, "From: \"TT Marketing Contact Form\" <noreply@example.com>")
	assert.Contains(t, s, "To: sales@example.com")
	assert.Contains(t, s, "Reply-To: jane@example.com")
	assert.Contains(t, s, "Subject: New Contact Form Submission from Jane Doe")
	assert.Contains(t, s, "multipart/alternative")
	assert.Contains(t, s, "text/plain; charset=UTF-8")
	assert.Contains(t, s, "text/html; charset=UTF-8")
}

func TestBuildMessage_EscapesUserHTML(t *testing.T) {
	svc := NewService(testConfig())
	sub := testSubmission()
	sub.FullName = `Jane <b>Doe</b>`
	sub.Message = `please quote <script>alert("x")</script> for 500kg`

	msg, err := svc.buildMessage(sub)
	require.NoError(t, err)
	s := string(msg)

	// The HTML part must carry the escaped forms of user input
	assert.Contains(t, s, "&lt;script&gt;")
	assert.Contains(t, s, "Jane &lt;b&gt;Doe&lt;/b&gt;")
}

func TestBuildMessage_StripsHeaderControlCharacters(t *testing.T) {
	svc := NewService(testConfig())
	sub := testSubmission()
	sub.FullName = "Jane\r\nBcc: attacker@evil.example"

	msg, err := svc.buildMessage(sub)
	require.NoError(t, err)
	s := string(msg)

	// The CRLF in the name must not start a new header line
	assert.NotContains(t, s, "\r\nBcc:")
	assert.NotContains(t, s, "\nBcc:")
	assert.Contains(t, s, "Subject: New Contact Form Submission from Jane  Bcc: attacker@evil.example\r\n")
}

func TestBuildMessage_OptionalFields(t *testing.T) {
	svc := NewService(testConfig())

	t.Run("present", func(t *testing.T) {
		sub := testSubmission()
		sub.Phone = "+911234567890"
		sub.CompanyName = "Acme Foods"
		sub.CapacityRequirement = "500 kg"

		msg, err := svc.buildMessage(sub)
		require.NoError(t, err)
		s := string(msg)
		assert.Contains(t, s, "tel:+911234567890")
		assert.Contains(t, s, "mailto:jane@example.com")
		assert.Contains(t, s, "Acme Foods")
		assert.Contains(t, s, "Capacity Requirement: 500 kg")
	})

	t.Run("absent", func(t *testing.T) {
		msg, err := svc.buildMessage(testSubmission())
		require.NoError(t, err)
		s := string(msg)
		assert.NotContains(t, s, "tel:")
		assert.NotContains(t, s, "Phone:")
		assert.NotContains(t, s, "Company:")
	})
}

func TestRenderText(t *testing.T) {
	sub := testSubmission()
	sub.Location = "Chennai"

	text := renderText(sub)
	assert.Contains(t, text, "Name: Jane Doe")
	assert.Contains(t, text, "Email: jane@example.com")
	assert.Contains(t, text, "Location: Chennai")
	assert.Contains(t, text, sub.Message)
	assert.NotContains(t, text, "Phone:")
}

func TestVerify_ConnectionFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = "1" // nothing listens here

	svc := NewService(cfg)
	svc.dialTimeout = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := svc.Verify(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerification)
}

func TestSend_VerificationFailureIsDistinct(t *testing.T) {
	cfg := testConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = "1"

	svc := NewService(cfg)
	svc.dialTimeout = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := svc.Send(ctx, testSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerification)
	assert.NotErrorIs(t, err, ErrDelivery)
}
