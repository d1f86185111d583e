package domain

import (
	"context"
	"fmt"
)

// Submission represents a contact form submission. Unknown JSON keys are
// dropped by decoding into this struct; only recognized fields survive.
type Submission struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Message  string `json:"message" validate:"required,min=10,max=1000"`
	// Optional business context, carried through unchanged into the
	// outbound email apart from trimming.
	CompanyName         string `json:"companyName,omitempty" validate:"omitempty,max=100"`
	Location            string `json:"location,omitempty" validate:"omitempty,max=100"`
	ProductCategory     string `json:"productCategory,omitempty" validate:"omitempty,max=100"`
	CapacityRequirement string `json:"capacityRequirement,omitempty" validate:"omitempty,max=100"`
}

// Violation is a single field/reason pair describing why a submission
// failed validation.
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the ordered list of violations for a rejected
// submission. One entry per violated field, first applicable rule wins.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission failed validation (%d violations)", len(e.Violations))
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitInquiry validates, sanitizes and dispatches a contact form
	// submission. Returns *ValidationError when the input is rejected.
	SubmitInquiry(ctx context.Context, sub *Submission) error
}

// Mailer delivers a sanitized submission to the site operators. The
// concrete SMTP implementation lives in pkg/email; tests substitute fakes.
type Mailer interface {
	Send(ctx context.Context, sub *Submission) error
}
