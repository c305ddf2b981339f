package webform

import (
	"context"
	"errors"
	"log"

	"buwana-tours/pkg/clients/intake"
	"buwana-tours/pkg/clientstore"
)

// Status text shown to the visitor. Failures never carry the underlying
// error; that goes to the log only.
const (
	ContactStatusSent   = "Thanks! Your message has been sent."
	ContactStatusFailed = "Error sending message. Try again later."
)

// ErrSubmissionInFlight reports a submit while the previous one has not
// resolved yet; the second submission is dropped.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Pickup type values used by the airport options block
const (
	PickupOnly  = "pickup"
	DropoffOnly = "dropoff"
)

// ContactForm models the contact page form. Every exported field mirrors a
// form control; the Change* methods are the field-change handlers and keep
// the dependent fields consistent.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string

	// Interest is the selected option of the interest field; Options are
	// the labels the field offers.
	Interest string
	Options  []string

	// Airport pickup/drop-off block, visible only while Interest is
	// InterestAirport
	AirportOptionsVisible bool
	PickupType            string

	// Trip dates as ISO YYYY-MM-DD strings. EndDateMin is the end date
	// picker's lower bound and always tracks StartDate.
	StartDate  string
	EndDate    string
	EndDateMin string

	Status string

	submitting bool
}

// NewContactForm creates an empty contact form offering the given interest
// options
func NewContactForm(options []string) *ContactForm {
	return &ContactForm{Options: options}
}

// ApplyStoredSelection pre-fills the interest field from the selection the
// listing page left in the store, then clears it so a later visit starts
// clean. The stored display name is mapped through the alias table first;
// the raw value is tried as a literal fallback. Without a matching option
// the field stays at its default.
func (f *ContactForm) ApplyStoredSelection(state *clientstore.State) error {
	stored, ok := state.SelectedPackage()
	if !ok {
		return nil
	}

	for _, candidate := range []string{NormalizePackageName(stored), stored} {
		if f.hasOption(candidate) {
			f.Interest = candidate
			f.syncAirportOptions()
			break
		}
	}

	return state.ClearSelectedPackage()
}

// ChangeInterest handles a change of the interest field
func (f *ContactForm) ChangeInterest(value string) {
	f.Interest = value
	f.syncAirportOptions()
}

// ChangePickupType handles a change of the pickup type. Pickup-only and
// drop-off-only are same-day trips, so the end date is forced to the start
// date; any other type only gets the lower bound.
func (f *ContactForm) ChangePickupType(value string) {
	f.PickupType = value
	if value == PickupOnly || value == DropoffOnly {
		f.EndDate = f.StartDate
	}
	f.EndDateMin = f.StartDate
}

// ChangeStartDate handles a change of the start date, pushing the end date
// forward when it would fall before the new start. ISO date strings order
// lexically, so plain string comparison is the date comparison.
func (f *ContactForm) ChangeStartDate(value string) {
	f.StartDate = value
	if f.EndDate < f.StartDate {
		f.EndDate = f.StartDate
	}
	f.EndDateMin = f.StartDate
}

// ChangeEndDate handles a change of the end date. The picker's lower bound
// keeps values below EndDateMin unselectable.
func (f *ContactForm) ChangeEndDate(value string) {
	if value < f.EndDateMin {
		value = f.EndDateMin
	}
	f.EndDate = value
}

// Submit sends the form to the intake API. On success the form resets and
// shows the sent status; on any transport or server failure it shows the
// generic retry status. A submit while one is in flight is dropped. Missing
// required fields abort before any network call (the browser's native
// validation normally catches those first).
func (f *ContactForm) Submit(ctx context.Context, client intake.Client) error {
	if f.submitting {
		return ErrSubmissionInFlight
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	req := intake.ContactRequest{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Interest:   f.Interest,
		Message:    f.Message,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		PickupType: f.PickupType,
	}

	if err := client.SubmitContact(ctx, req); err != nil {
		if errors.Is(err, intake.ErrMissingField) {
			return err
		}
		log.Printf("Error sending contact form: %v", err)
		f.Status = ContactStatusFailed
		return err
	}

	f.reset()
	f.Status = ContactStatusSent
	return nil
}

func (f *ContactForm) reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Message = ""
	f.Interest = ""
	f.PickupType = ""
	f.StartDate = ""
	f.EndDate = ""
	f.EndDateMin = ""
	f.AirportOptionsVisible = false
}

func (f *ContactForm) syncAirportOptions() {
	f.AirportOptionsVisible = f.Interest == InterestAirport
}

func (f *ContactForm) hasOption(label string) bool {
	for _, option := range f.Options {
		if option == label {
			return true
		}
	}
	return false
}
