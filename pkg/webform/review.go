package webform

import (
	"strings"

	"buwana-tours/pkg/clientstore"
)

// ReviewForm models the review form. Reviews never reach the server; they
// live in the visitor's own store.
type ReviewForm struct {
	Name    string
	Rating  int
	Text    string
	Country string
}

// Submit appends the review to the local store and resets the form. Invalid
// input (empty name or text, rating outside 1-5) aborts silently, matching
// the form's behavior of simply doing nothing.
func (f *ReviewForm) Submit(state *clientstore.State) (bool, error) {
	name := strings.TrimSpace(f.Name)
	text := strings.TrimSpace(f.Text)
	if name == "" || text == "" || f.Rating < 1 || f.Rating > 5 {
		return false, nil
	}

	review := clientstore.Review{
		Name:    name,
		Rating:  f.Rating,
		Text:    text,
		Country: strings.TrimSpace(f.Country),
	}
	if err := state.AddReview(review); err != nil {
		return false, err
	}

	*f = ReviewForm{}
	return true, nil
}
