package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"go-scales-backend/internal/domain"
)

var (
	// ErrNotConfigured means required SMTP settings are absent. This is a
	// deployment defect, not a per-submission error.
	ErrNotConfigured = errors.New("email: service is not configured")
	// ErrVerification means the SMTP connection or authentication could
	// not be verified before sending.
	ErrVerification = errors.New("email: smtp verification failed")
	// ErrDelivery means the send itself failed after verification.
	ErrDelivery = errors.New("email: delivery failed")
)

// Config holds the SMTP settings for contact form delivery. All fields
// are required; the service refuses to operate with any of them missing.
type Config struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string // verified sender address
	ToEmail   string // fixed recipient for leads
}

func (c Config) missing() []string {
	var miss []string
	for _, f := range []struct{ name, value string }{
		{"SMTP_HOST", c.Host},
		{"SMTP_PORT", c.Port},
		{"SMTP_USER", c.Username},
		{"SMTP_PASSWORD", c.Password},
		{"SMTP_FROM", c.FromEmail},
		{"CONTACT_EMAIL", c.ToEmail},
	} {
		if f.value == "" {
			miss = append(miss, f.name)
		}
	}
	return miss
}

// Service sends contact form emails via SMTP. It implements domain.Mailer.
type Service struct {
	cfg         Config
	configErr   error
	dialTimeout time.Duration
}

var _ domain.Mailer = (*Service)(nil)

// NewService creates the mail dispatcher. A service built from incomplete
// configuration is still returned so the process can start, but every
// operation on it fails fast with ErrNotConfigured.
func NewService(cfg Config) *Service {
	var configErr error
	if miss := cfg.missing(); len(miss) > 0 {
		configErr = fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(miss, ", "))
	}
	return &Service{
		cfg:         cfg,
		configErr:   configErr,
		dialTimeout: 10 * time.Second,
	}
}

// ConfigError reports whether the service is operable. Nil means all
// required settings are present.
func (s *Service) ConfigError() error {
	return s.configErr
}

// Verify establishes an SMTP session, authenticates and quits without
// sending anything. Failures are reported as ErrVerification so callers
// can distinguish connectivity problems from send failures.
func (s *Service) Verify(ctx context.Context) error {
	if s.configErr != nil {
		return s.configErr
	}
	if err := s.transact(ctx, func(*smtp.Client) error { return nil }); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return nil
}

// Send delivers exactly one email for the given sanitized submission to
// the configured recipient, with the submitter set as Reply-To. No retry
// is attempted and nothing is persisted.
func (s *Service) Send(ctx context.Context, sub *domain.Submission) error {
	if s.configErr != nil {
		return s.configErr
	}

	if err := s.Verify(ctx); err != nil {
		return err
	}

	msg, err := s.buildMessage(sub)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	err = s.transact(ctx, func(c *smtp.Client) error {
		if err := c.Mail(s.cfg.FromEmail); err != nil {
			return fmt.Errorf("set sender: %w", err)
		}
		if err := c.Rcpt(s.cfg.ToEmail); err != nil {
			return fmt.Errorf("set recipient: %w", err)
		}
		w, err := c.Data()
		if err != nil {
			return fmt.Errorf("open data writer: %w", err)
		}
		if _, err := w.Write(msg); err != nil {
			_ = w.Close()
			return fmt.Errorf("write message: %w", err)
		}
		return w.Close()
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return nil
}

// transact runs fn inside an authenticated SMTP session. Port 465 uses
// implicit TLS; any other port upgrades with STARTTLS when the server
// offers it. The whole transaction runs under a bounded deadline.
func (s *Service) transact(ctx context.Context, fn func(*smtp.Client) error) error {
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	useTLS := s.cfg.Port == "465"

	var (
		conn net.Conn
		err  error
	)
	dialer := &net.Dialer{Timeout: s.dialTimeout}
	if useTLS {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.cfg.Host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("connect to smtp server: %w", err)
	}

	deadline := time.Now().Add(30 * time.Second)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer func() { _ = client.Close() }()

	if !useTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authentication: %w", err)
		}
	}

	if err := fn(client); err != nil {
		return err
	}

	if err := client.Quit(); err != nil {
		// Some servers drop the connection right after DATA; the message
		// has already been accepted at this point.
		return nil
	}
	return nil
}

// headerValue replaces control characters with spaces so user-supplied
// text can never terminate a header line and smuggle additional headers
// into the message.
func headerValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}

// buildMessage renders the submission into a multipart/alternative MIME
// message with plain-text and HTML parts. Header-bound values pass
// through headerValue first.
func (s *Service) buildMessage(sub *domain.Submission) ([]byte, error) {
	htmlBody, err := renderHTML(sub)
	if err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	textBody := renderText(sub)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	headers := [][2]string{
		{"From", fmt.Sprintf("%q <%s>", "TT Marketing Contact Form", s.cfg.FromEmail)},
		{"To", s.cfg.ToEmail},
		{"Reply-To", headerValue(sub.Email)},
		{"Subject", "New Contact Form Submission from " + headerValue(sub.FullName)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary())},
	}
	for _, h := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h[0], h[1])
	}
	buf.WriteString("\r\n")

	text, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := text.Write([]byte(textBody)); err != nil {
		return nil, err
	}

	html, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=UTF-8"}})
	if err != nil {
		return nil, err
	}
	if _, err := html.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// contactEmailTemplate is the HTML body for contact form emails. Going
// through html/template guarantees user-supplied text is escaped.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1e40af; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9fafb; }
        .field { margin-bottom: 10px; }
        .label { font-weight: bold; color: #1e40af; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1e40af; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #6b7280; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field"><span class="label">Name:</span> {{.FullName}}</div>
            <div class="field"><span class="label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
            {{if .Phone}}<div class="field"><span class="label">Phone:</span> <a href="tel:{{.Phone}}">{{.Phone}}</a></div>{{end}}
            {{if .CompanyName}}<div class="field"><span class="label">Company:</span> {{.CompanyName}}</div>{{end}}
            {{if .Location}}<div class="field"><span class="label">Location:</span> {{.Location}}</div>{{end}}
            {{if .ProductCategory}}<div class="field"><span class="label">Product Category:</span> {{.ProductCategory}}</div>{{end}}
            {{if .CapacityRequirement}}<div class="field"><span class="label">Capacity Requirement:</span> {{.CapacityRequirement}}</div>{{end}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the TT Marketing contact form.</p>
        </div>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

func renderHTML(sub *domain.Submission) (string, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, sub); err != nil {
		return "", err
	}
	return body.String(), nil
}

func renderText(sub *domain.Submission) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Name: " + sub.FullName + "\n")
	b.WriteString("Email: " + sub.Email + "\n")
	if sub.Phone != "" {
		b.WriteString("Phone: " + sub.Phone + "\n")
	}
	if sub.CompanyName != "" {
		b.WriteString("Company: " + sub.CompanyName + "\n")
	}
	if sub.Location != "" {
		b.WriteString("Location: " + sub.Location + "\n")
	}
	if sub.ProductCategory != "" {
		b.WriteString("Product Category: " + sub.ProductCategory + "\n")
	}
	if sub.CapacityRequirement != "" {
		b.WriteString("Capacity Requirement: " + sub.CapacityRequirement + "\n")
	}
	b.WriteString("\nMessage:\n")
	b.WriteString(sub.Message)
	b.WriteString("\n\n---\nThis email was sent from the TT Marketing contact form.\n")
	return b.String()
}
