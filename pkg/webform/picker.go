package webform

import (
	"fmt"

	"buwana-tours/pkg/clientstore"
)

// ContactPage is the navigation target after using a card's select control
const ContactPage = "contact.html"

// PackagePicker holds the selection state of the package listing page. At
// most one card is selected at a time.
type PackagePicker struct {
	Selected    string
	Note        string
	NoteVisible bool
}

// NewPackagePicker creates a picker with nothing selected
func NewPackagePicker() *PackagePicker {
	return &PackagePicker{}
}

// ClickCard selects the named package, replacing any previous selection,
// shows the confirmation note and writes the selection to the store so the
// contact page can pick it up.
func (p *PackagePicker) ClickCard(name string, state *clientstore.State) error {
	p.Selected = name
	p.Note = fmt.Sprintf("Selected: %s", name)
	p.NoteVisible = true

	if err := state.SetSelectedPackage(name); err != nil {
		return fmt.Errorf("storing selected package: %w", err)
	}
	return nil
}

// ClickSelect handles the card's explicit select button: it selects the
// card like ClickCard and returns the contact page as the navigation
// target.
func (p *PackagePicker) ClickSelect(name string, state *clientstore.State) (string, error) {
	if err := p.ClickCard(name, state); err != nil {
		return "", err
	}
	return ContactPage, nil
}
