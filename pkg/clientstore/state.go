package clientstore

import (
	"encoding/json"
	"fmt"
)

// Keys used in the persistent store. These match the keys the site has
// always written, so existing visitor state keeps working.
const (
	keySelectedPackage = "buwana_selected_package"
	keyScrollToInquiry = "scrollToInquiry"
	keyReviews         = "buwana_reviews"
)

// State exposes typed accessors over a Store, one set per persisted key.
// Selected package persists until the contact form consumes it; the
// scroll-to-inquiry flag is read-once; reviews are append-only.
type State struct {
	store Store
}

// NewState wraps a Store with typed accessors
func NewState(store Store) *State {
	return &State{store: store}
}

// SelectedPackage returns the package name carried over from the listing
// page, if one was selected
func (s *State) SelectedPackage() (string, bool) {
	return s.store.Get(keySelectedPackage)
}

// SetSelectedPackage records the package chosen on the listing page
func (s *State) SetSelectedPackage(name string) error {
	return s.store.Set(keySelectedPackage, name)
}

// ClearSelectedPackage removes the carried-over selection. The contact form
// calls this once it has consumed the value, so a later plain visit does not
// re-apply a stale selection.
func (s *State) ClearSelectedPackage() error {
	return s.store.Delete(keySelectedPackage)
}

// SetScrollToInquiry arms the one-shot scroll flag before redirecting to
// the landing page
func (s *State) SetScrollToInquiry() error {
	return s.store.Set(keyScrollToInquiry, "true")
}

// TakeScrollToInquiry reports whether the scroll flag is armed and clears
// it, so a second read returns false
func (s *State) TakeScrollToInquiry() bool {
	value, ok := s.store.Get(keyScrollToInquiry)
	if !ok || value != "true" {
		return false
	}
	if err := s.store.Delete(keyScrollToInquiry); err != nil {
		return false
	}
	return true
}

// Review is a visitor review kept entirely client-side
type Review struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
	Country string `json:"country,omitempty"`
}

// Reviews returns all locally stored reviews in insertion order
func (s *State) Reviews() ([]Review, error) {
	raw, ok := s.store.Get(keyReviews)
	if !ok || raw == "" {
		return nil, nil
	}

	var reviews []Review
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		return nil, fmt.Errorf("parsing stored reviews: %w", err)
	}
	return reviews, nil
}

// AddReview appends a review to the stored list
func (s *State) AddReview(review Review) error {
	reviews, err := s.Reviews()
	if err != nil {
		return err
	}
	reviews = append(reviews, review)

	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("encoding reviews: %w", err)
	}
	return s.store.Set(keyReviews, string(data))
}
