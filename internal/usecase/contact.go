package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-scales-backend/internal/domain"
	"go-scales-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	mailer   domain.Mailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.Mailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// ValidateSubmission checks a submission against the schema and returns
// the ordered list of violations, one entry per violated field (the first
// applicable rule wins). Nil means the submission is valid. Pure function,
// no side effects.
func ValidateSubmission(validate *validator.Validate, sub *domain.Submission) []domain.Violation {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.Violation{{Field: "body", Reason: "Invalid submission"}}
	}

	violations := make([]domain.Violation, 0, len(verrs))
	for _, e := range verrs {
		violations = append(violations, domain.Violation{
			Field:  e.Field(),
			Reason: validation.Reason(e),
		})
	}
	return violations
}

// SanitizeSubmission normalizes a validated submission: every text field
// is trimmed and the email is lower-cased. Message content is otherwise
// untouched; HTML escaping happens in the mail dispatcher when rendering.
// Total and idempotent.
func SanitizeSubmission(sub domain.Submission) domain.Submission {
	sub.FullName = strings.TrimSpace(sub.FullName)
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.CompanyName = strings.TrimSpace(sub.CompanyName)
	sub.Location = strings.TrimSpace(sub.Location)
	sub.ProductCategory = strings.TrimSpace(sub.ProductCategory)
	sub.CapacityRequirement = strings.TrimSpace(sub.CapacityRequirement)
	return sub
}

// SubmitInquiry runs the full pipeline: validate, sanitize, dispatch.
// An invalid submission never reaches the mailer.
func (uc *contactUsecase) SubmitInquiry(ctx context.Context, sub *domain.Submission) error {
	if violations := ValidateSubmission(uc.validate, sub); len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}

	clean := SanitizeSubmission(*sub)

	if err := uc.mailer.Send(ctx, &clean); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	return nil
}
