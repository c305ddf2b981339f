package webform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buwana-tours/pkg/clientstore"
)

func TestClickCardSelectsExclusively(t *testing.T) {
	state := clientstore.NewState(clientstore.NewMemoryStore())
	picker := NewPackagePicker()

	require.NoError(t, picker.ClickCard("Yala Safari Adventure", state))
	assert.Equal(t, "Yala Safari Adventure", picker.Selected)
	assert.True(t, picker.NoteVisible)
	assert.Contains(t, picker.Note, "Yala Safari Adventure")

	// Clicking another card replaces the selection
	require.NoError(t, picker.ClickCard("Sigiriya (Dambulla) & Minneriya", state))
	assert.Equal(t, "Sigiriya (Dambulla) & Minneriya", picker.Selected)

	stored, ok := state.SelectedPackage()
	require.True(t, ok)
	assert.Equal(t, "Sigiriya (Dambulla) & Minneriya", stored)
}

func TestClickSelectNavigatesToContactPage(t *testing.T) {
	state := clientstore.NewState(clientstore.NewMemoryStore())
	picker := NewPackagePicker()

	target, err := picker.ClickSelect("Galle Fort & Bentota Beaches", state)
	require.NoError(t, err)

	assert.Equal(t, ContactPage, target)
	assert.Equal(t, "Galle Fort & Bentota Beaches", picker.Selected)

	stored, ok := state.SelectedPackage()
	require.True(t, ok)
	assert.Equal(t, "Galle Fort & Bentota Beaches", stored)
}

func TestSelectionSurvivesPageLoad(t *testing.T) {
	// The picker and the contact form run on different page loads; only
	// the file-backed store connects them.
	path := t.TempDir() + "/state.json"

	store, err := clientstore.OpenFileStore(path)
	require.NoError(t, err)
	picker := NewPackagePicker()
	_, err = picker.ClickSelect("Sigiriya (Dambulla) & Minneriya", clientstore.NewState(store))
	require.NoError(t, err)

	reopened, err := clientstore.OpenFileStore(path)
	require.NoError(t, err)
	form := NewContactForm(contactOptions)
	require.NoError(t, form.ApplyStoredSelection(clientstore.NewState(reopened)))

	assert.Equal(t, "Sigiriya & Dambulla", form.Interest)
}
