package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buwana-tours/pkg/models"
)

type recordingStore struct {
	inquiries []*models.Inquiry
	contacts  []*models.Contact
}

func (r *recordingStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	r.inquiries = append(r.inquiries, inquiry)
	return nil
}

func (r *recordingStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *recordingStore) Ping(ctx context.Context) error {
	return nil
}

func TestSaveInquiryRejectsBeforePersisting(t *testing.T) {
	store := &recordingStore{}
	svc := NewIntakeService(store)

	err := svc.SaveInquiry(context.Background(), &models.Inquiry{
		Name:  "Anusha",
		Email: "anusha@example.com",
		// message missing
	})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "message", ve.Field)
	assert.Empty(t, store.inquiries, "nothing may reach the store on validation failure")
}

func TestSaveInquiryTrimsIdentityFields(t *testing.T) {
	store := &recordingStore{}
	svc := NewIntakeService(store)

	require.NoError(t, svc.SaveInquiry(context.Background(), &models.Inquiry{
		Name:    "  Anusha ",
		Email:   " anusha@example.com ",
		Message: "hello",
	}))

	require.Len(t, store.inquiries, 1)
	assert.Equal(t, "Anusha", store.inquiries[0].Name)
	assert.Equal(t, "anusha@example.com", store.inquiries[0].Email)
}

func TestSaveContactPassesOptionalFieldsThrough(t *testing.T) {
	store := &recordingStore{}
	svc := NewIntakeService(store)

	require.NoError(t, svc.SaveContact(context.Background(), &models.Contact{
		Name:       "Ben",
		Email:      "ben@example.com",
		Message:    "Airport transfer",
		StartDate:  "2024-05-03",
		EndDate:    "2024-05-01",
		PickupType: "anything goes",
	}))

	require.Len(t, store.contacts, 1)
	saved := store.contacts[0]
	assert.Equal(t, "2024-05-03", saved.StartDate)
	assert.Equal(t, "2024-05-01", saved.EndDate)
	assert.Equal(t, "anything goes", saved.PickupType)
}

func TestSaveContactWrapsStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := NewIntakeService(&failingStore{err: storeErr})

	err := svc.SaveContact(context.Background(), &models.Contact{
		Name:    "Ben",
		Email:   "ben@example.com",
		Message: "hi",
	})
	require.ErrorIs(t, err, storeErr)

	var ve *models.ValidationError
	assert.False(t, errors.As(err, &ve), "store failures are not validation failures")
}

type failingStore struct {
	err error
}

func (f *failingStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	return f.err
}

func (f *failingStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	return f.err
}

func (f *failingStore) Ping(ctx context.Context) error {
	return f.err
}
