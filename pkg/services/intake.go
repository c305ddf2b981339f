package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"buwana-tours/pkg/metrics"
	"buwana-tours/pkg/models"
)

// SubmissionStore is the persistence surface the intake service needs
type SubmissionStore interface {
	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	CreateContact(ctx context.Context, contact *models.Contact) error
	Ping(ctx context.Context) error
}

// IntakeService defines the interface for handling form submissions
type IntakeService interface {
	SaveInquiry(ctx context.Context, inquiry *models.Inquiry) error
	SaveContact(ctx context.Context, contact *models.Contact) error
	Healthy(ctx context.Context) error
}

type intakeServiceImpl struct {
	store SubmissionStore
}

// NewIntakeService creates a new intake service
func NewIntakeService(store SubmissionStore) IntakeService {
	return &intakeServiceImpl{store: store}
}

// SaveInquiry validates and persists one inquiry form submission
func (s *intakeServiceImpl) SaveInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		metrics.RecordSubmissionRejected("inquiry", "validation")
		return err
	}

	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)

	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		metrics.RecordSubmissionRejected("inquiry", "storage")
		return fmt.Errorf("saving inquiry: %w", err)
	}

	log.Printf("[INTAKE] Inquiry saved: name=%s, interest=%q", inquiry.Name, inquiry.Interest)
	metrics.RecordInquirySubmission()
	return nil
}

// SaveContact validates and persists one contact form submission. Trip dates
// and pickup type are persisted verbatim; the client owns range consistency.
func (s *intakeServiceImpl) SaveContact(ctx context.Context, contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		metrics.RecordSubmissionRejected("contact", "validation")
		return err
	}

	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)

	if err := s.store.CreateContact(ctx, contact); err != nil {
		metrics.RecordSubmissionRejected("contact", "storage")
		return fmt.Errorf("saving contact: %w", err)
	}

	log.Printf("[INTAKE] Contact saved: name=%s, interest=%q, dates=%s..%s",
		contact.Name, contact.Interest, contact.StartDate, contact.EndDate)
	metrics.RecordContactSubmission()
	return nil
}

// Healthy reports whether the backing store is reachable
func (s *intakeServiceImpl) Healthy(ctx context.Context) error {
	return s.store.Ping(ctx)
}
