package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-scales-backend/internal/delivery/http/response"
	"go-scales-backend/internal/domain"
	"go-scales-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact handles POST /api/contact. Outcomes map to exactly three
// responses: 200 on accepted, 400 with field violations on rejected
// input, 500 with a generic body on delivery or unexpected failure.
// Internal detail is logged by the error middleware, never returned.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			// Known field with the wrong JSON type reads as a single
			// violation for that field.
			c.Error(apperror.Validation("Validation failed", []domain.Violation{
				{Field: typeErr.Field, Reason: typeErr.Field + " has an invalid type"},
			}))
			return
		}
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.contactUC.SubmitInquiry(c.Request.Context(), &sub); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.Error(apperror.Validation("Validation failed", vErr.Violations))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
