package webform

import (
	"context"
	"errors"
	"log"

	"buwana-tours/pkg/clients/intake"
)

// Alert text for the inquiry form, which reports both outcomes through a
// blocking alert dialog rather than inline status text
const (
	InquiryAlertSent   = "Inquiry submitted successfully!"
	InquiryAlertFailed = "Error submitting inquiry. Please try again later."
)

// InquiryForm models the landing page inquiry form
type InquiryForm struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string

	// Alert holds the dialog text raised by the last submit
	Alert string

	submitting bool
}

// NewInquiryForm creates an empty inquiry form
func NewInquiryForm() *InquiryForm {
	return &InquiryForm{}
}

// Submit sends the inquiry to the intake API. On success the form resets;
// either outcome raises an alert. Submits while one is in flight, or with
// required fields missing, are dropped without an alert.
func (f *InquiryForm) Submit(ctx context.Context, client intake.Client) error {
	if f.submitting {
		return ErrSubmissionInFlight
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	req := intake.InquiryRequest{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Interest: f.Interest,
		Message:  f.Message,
	}

	if err := client.SubmitInquiry(ctx, req); err != nil {
		if errors.Is(err, intake.ErrMissingField) {
			return err
		}
		log.Printf("Error submitting inquiry: %v", err)
		f.Alert = InquiryAlertFailed
		return err
	}

	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Interest = ""
	f.Message = ""
	f.Alert = InquiryAlertSent
	return nil
}
